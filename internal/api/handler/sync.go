package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/nbohlen/walkin-forecast-api/internal/scheduler"
	"github.com/nbohlen/walkin-forecast-api/pkg/apiErrors"
)

// TriggerSync starts a manual daily sync run. The scheduler's single-flight
// guard refuses a second run while one is in progress.
func TriggerSync(service *scheduler.DailySyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer,
				"daily sync service not available", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "daily sync triggered",
		})
	}
}

// GetSyncStatus reports the scheduler configuration and the last run summary.
func GetSyncStatus(service *scheduler.DailySyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSyncStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer,
				"daily sync service not available", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
