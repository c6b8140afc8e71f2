package handler

import (
	"net/http"

	"github.com/nbohlen/walkin-forecast-api/internal/api/handler/router"
	"github.com/nbohlen/walkin-forecast-api/internal/scheduler"
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/forecast",
			Method:  http.MethodGet,
			Handler: GetForecastView(service),
		},
		{
			Path:    "/v1/dashboard/staffing/:date",
			Method:  http.MethodGet,
			Handler: GetStaffingPlan(service),
		},
		{
			Path:    "/v1/dashboard/snapshots/:date",
			Method:  http.MethodGet,
			Handler: GetSnapshots(service),
		},
		{
			Path:    "/v1/dashboard/predictions",
			Method:  http.MethodGet,
			Handler: GetRawPredictions(service),
		},
	}
}

func Sync(service *scheduler.DailySyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: TriggerSync(service),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}
