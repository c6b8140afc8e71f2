package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/reporting"
	"github.com/nbohlen/walkin-forecast-api/pkg/apiErrors"
	"github.com/nbohlen/walkin-forecast-api/pkg/utils"
)

// GetStaffingPlan serves the staffing plan for a single date, derived from
// the predicted total guests.
func GetStaffingPlan(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetStaffingPlan")

		rawDate := httprouter.ParamsFromContext(r.Context()).ByName("date")
		if rawDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "date is required", nil)
			return
		}

		date, err := utils.ParseDate(rawDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
				"date must be formatted as YYYY-MM-DD", nil)
			return
		}

		day, err := service.StaffingPlan(r.Context(), *date)
		if err != nil {
			logrus.WithError(err).Warn("no staffing plan available")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"no forecast available for the requested date", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(day)
	}
}
