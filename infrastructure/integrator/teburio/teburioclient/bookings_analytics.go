package teburioclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	teburiodomain "github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio/domain"
	"github.com/nbohlen/walkin-forecast-api/pkg/log"
)

// maxPages bounds the cursor loop. The API has never returned more than a
// handful of pages for a 60-day window; hitting the bound means the cursor
// stopped advancing.
const maxPages = 50

const bookingsAnalyticsQuery = `
query bookingsAnalytics($locationId: String!, $date: Date!, $endDate: Date!, $startingAfter: Date) {
    bookingsAnalytics(locationId: $locationId, date: $date, endDate: $endDate, startingAfter: $startingAfter) {
        cursor
        hasMore
        count
        bookings {
            _id
            date
            endDate
            people
            cancelled
            noShow
            walkIn
            source
            host
            tracking {
                source
                medium
                campaign
                __typename
            }
            rating
            tagIds
            bookingTagsCount {
                key
                value
                __typename
            }
            payment {
                status
                __typename
            }
            __typename
        }
        __typename
    }
}
`

type BookingsAnalyticsParams struct {
	// ISO 8601 timestamps with offset, e.g. "2025-11-27T00:00:00+01:00".
	StartDate string
	EndDate   string
}

type BookingsAnalyticsResult struct {
	Bookings []teburiodomain.AnalyticsBooking
	Count    int
	Pages    int
}

type graphQLRequest struct {
	OperationName string                 `json:"operationName"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type bookingsAnalyticsResponse struct {
	Data struct {
		BookingsAnalytics struct {
			Cursor   *int64                           `json:"cursor"`
			HasMore  bool                             `json:"hasMore"`
			Count    int                              `json:"count"`
			Bookings []teburiodomain.AnalyticsBooking `json:"bookings"`
		} `json:"bookingsAnalytics"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// BookingsAnalytics fetches all bookings in the window, following the
// cursor/hasMore pagination until the API reports the last page.
func (c *TeburioClient) BookingsAnalytics(ctx context.Context, params BookingsAnalyticsParams) (BookingsAnalyticsResult, error) {
	var result BookingsAnalyticsResult
	var cursor *int64

	logger := log.ForContext(ctx)

	for page := 1; ; page++ {
		pageData, err := c.fetchPage(ctx, params, cursor)
		if err != nil {
			return result, fmt.Errorf("page %d: %w", page, err)
		}

		result.Bookings = append(result.Bookings, pageData.Bookings...)
		result.Count = pageData.Count
		result.Pages = page

		logger.WithField("page", page).
			Debugf("Fetched %d bookings (total: %d)", len(pageData.Bookings), len(result.Bookings))

		if !pageData.HasMore {
			break
		}

		if pageData.Cursor == nil {
			logger.Warn("API reports more pages but returned no cursor, stopping pagination")
			break
		}
		cursor = pageData.Cursor

		if page >= maxPages {
			logger.Warnf("Pagination stopped at the %d-page bound", maxPages)
			break
		}
	}

	return result, nil
}

func (c *TeburioClient) fetchPage(ctx context.Context, params BookingsAnalyticsParams, cursor *int64) (*bookingsAnalyticsPage, error) {
	variables := map[string]interface{}{
		"locationId":    c.config.Teburio.LocationID,
		"date":          params.StartDate,
		"endDate":       params.EndDate,
		"startingAfter": cursor,
	}

	body, err := json.Marshal(graphQLRequest{
		OperationName: "bookingsAnalytics",
		Query:         bookingsAnalyticsQuery,
		Variables:     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Teburio.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("account_token", c.config.Teburio.AccountToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status: %s", resp.Status)
	}

	var decoded bookingsAnalyticsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", decoded.Errors[0].Message)
	}

	analytics := decoded.Data.BookingsAnalytics

	return &bookingsAnalyticsPage{
		Bookings: analytics.Bookings,
		Cursor:   analytics.Cursor,
		HasMore:  analytics.HasMore,
		Count:    analytics.Count,
	}, nil
}

type bookingsAnalyticsPage struct {
	Bookings []teburiodomain.AnalyticsBooking
	Cursor   *int64
	HasMore  bool
	Count    int
}
