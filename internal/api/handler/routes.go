package handler

import (
	"net/http"

	"github.com/vfg2006/pharmacy-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/pharmacy-analytics-api/internal/usecases/reporting"
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

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/analytics",
			Method:  http.MethodGet,
			Handler: GetAnalyticsReport(service),
		},
		{
			Path:    "/v1/reports/pharmacy",
			Method:  http.MethodGet,
			Handler: GetPharmacyReport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
