package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/reporting"
	"github.com/nbohlen/walkin-forecast-api/pkg/apiErrors"
	"github.com/nbohlen/walkin-forecast-api/pkg/utils"
)

const (
	defaultForecastDays = 21
	maxForecastDays     = 60
)

// GetForecastView serves the dashboard rows: prediction, reservations,
// weather and the staffing plan per day. The optional "days" query parameter
// controls the horizon.
func GetForecastView(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetForecastView")

		days := defaultForecastDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxForecastDays {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"days must be a number between 1 and 60", nil)
				return
			}
			days = parsed
		}

		view, err := service.ForecastView(r.Context(), days)
		if err != nil {
			logrus.WithError(err).Error("failed to load forecast view")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation,
				"failed to load forecast view", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"days":  len(view),
			"items": view,
		})
	}
}

// GetSnapshots serves the booking snapshot series taken on a given date.
func GetSnapshots(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSnapshots")

		rawDate := httprouter.ParamsFromContext(r.Context()).ByName("date")
		date, err := utils.ParseDate(rawDate)
		if err != nil || rawDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
				"date must be formatted as YYYY-MM-DD", nil)
			return
		}

		snapshots, err := service.Snapshots(r.Context(), *date)
		if err != nil {
			logrus.WithError(err).Error("failed to load booking snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation,
				"failed to load booking snapshots", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"snapshot_date": rawDate,
			"items":         snapshots,
		})
	}
}

// GetRawPredictions serves the stored model outputs from a given date
// onwards, defaulting to today. Mainly used to audit a prediction run.
func GetRawPredictions(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRawPredictions")

		from := time.Now()
		if raw := r.URL.Query().Get("from"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
					"from must be formatted as YYYY-MM-DD", nil)
				return
			}
			from = *parsed
		}

		predictions, err := service.RawPredictions(r.Context(), from)
		if err != nil {
			logrus.WithError(err).Error("failed to load predictions")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation,
				"failed to load predictions", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"items": predictions,
		})
	}
}
