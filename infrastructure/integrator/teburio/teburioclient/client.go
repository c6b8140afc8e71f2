package teburioclient

import (
	"context"
	"net/http"
	"time"

	"github.com/nbohlen/walkin-forecast-api/internal/config"
)

type Client interface {
	BookingsAnalytics(ctx context.Context, params BookingsAnalyticsParams) (BookingsAnalyticsResult, error)
}

type TeburioClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TeburioClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
