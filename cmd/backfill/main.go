package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/database/postgres"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo/openmeteoclient"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/repository"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
)

// backfill imports observed weather from the archive API month by month,
// e.g. to seed the historical table before the first model training:
//
//	backfill -year 2023
//	backfill -year 2024 -months 1,2,3
func main() {
	year := flag.Int("year", 0, "year to import (required)")
	monthsFlag := flag.String("months", "", "comma-separated months, default all (1-12)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if *year == 0 {
		logrus.Fatal("-year is required")
	}

	months, err := parseMonths(*monthsFlag)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid -months value")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer pgConn.Close()

	weatherDailyRepo := repository.NewWeatherDailyRepository(pgConn)
	weatherIntegrator := openmeteo.New(cfg, openmeteoclient.NewClient(cfg))

	yearStart := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(*year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if existing, err := weatherDailyRepo.GetRange(ctx, yearStart, yearEnd); err != nil {
		logrus.WithError(err).Warn("Could not check existing coverage")
	} else {
		logrus.Infof("%d days already stored for %d, re-imported days are refreshed in place", len(existing), *year)
	}

	totalSaved := 0
	for _, month := range months {
		start := time.Date(*year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)

		logrus.WithFields(logrus.Fields{
			"year":  *year,
			"month": month,
		}).Info("Importing month")

		days, err := weatherIntegrator.FetchHistorical(ctx, start, end)
		if err != nil {
			logrus.WithError(err).Errorf("Failed to fetch %d-%02d, skipping", *year, month)
			continue
		}

		if err := weatherDailyRepo.SaveBatch(ctx, days); err != nil {
			logrus.WithError(err).Errorf("Failed to save %d-%02d, skipping", *year, month)
			continue
		}

		totalSaved += len(days)
		logrus.Infof("Imported %d days for %d-%02d", len(days), *year, month)

		// Be gentle with the archive API between months.
		time.Sleep(1 * time.Second)
	}

	logrus.Infof("Backfill for %d completed, %d days saved", *year, totalSaved)
}

func parseMonths(raw string) ([]int, error) {
	if raw == "" {
		months := make([]int, 12)
		for i := range months {
			months[i] = i + 1
		}
		return months, nil
	}

	parts := strings.Split(raw, ",")
	months := make([]int, 0, len(parts))
	for _, part := range parts {
		month, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("month %d out of range", month)
		}
		months = append(months, month)
	}
	return months, nil
}
