package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/apeiros/support-dashboard-api/internal/scheduler"
	"github.com/apeiros/support-dashboard-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron acionáveis manualmente
type CronJobServices struct {
	DailyBillOverviewService *scheduler.DailyBillOverviewService
}

// RunDailyOverview dispara manualmente uma rodada do panorama diário de bills
func RunDailyOverview(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDailyOverview")

		if services.DailyBillOverviewService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do panorama diário não disponível", nil)
			return
		}

		services.DailyBillOverviewService.TriggerManualRun()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Panorama diário de bills iniciado com sucesso",
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.DailyBillOverviewService != nil {
			status["daily_bill_overview"] = services.DailyBillOverviewService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
