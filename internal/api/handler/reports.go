package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
	"github.com/vfg2006/pharmacy-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/pharmacy-analytics-api/pkg/log"
)

// GetAnalyticsReport devolve o snapshot completo de métricas do dashboard
// de analytics para o período solicitado
func GetAnalyticsReport(service reporting.Reporter) http.Handler {
	return reportHandler(service, domain.ReportTypeAnalytics)
}

// GetPharmacyReport devolve o snapshot de métricas operacionais da farmácia
func GetPharmacyReport(service reporting.Reporter) http.Handler {
	return reportHandler(service, domain.ReportTypePharmacy)
}

func reportHandler(service reporting.Reporter, reportType domain.ReportType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period := domain.Period(r.URL.Query().Get("period"))
		if period == "" {
			period = domain.PeriodMonth
		}

		customStart := r.URL.Query().Get("start_date")
		customEnd := r.URL.Query().Get("end_date")

		logger.WithFields(log.Fields{
			"report_type": reportType,
			"period":      period,
			"start_date":  customStart,
			"end_date":    customEnd,
		}).Info("reports: computing report snapshot")

		result, err := service.ComputeSnapshot(r.Context(), reportType, period, customStart, customEnd)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_type": reportType,
				"period":      period,
				"error":       err.Error(),
			}).Error("reports: failed to compute snapshot and no cached fallback")

			// O motivo real fica só no log; o cliente recebe uma mensagem genérica
			http.Error(w, "não foi possível carregar as métricas", http.StatusInternalServerError)
			return
		}

		if result.IsFromCache {
			logger.WithFields(log.Fields{
				"report_type":  reportType,
				"generated_at": result.Snapshot.GeneratedAt,
			}).Warn("reports: serving cached snapshot in degraded mode")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"report_type": reportType,
				"error":       err.Error(),
			}).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
