package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/apeiros/support-dashboard-api/internal/usecases/billing"
	"github.com/apeiros/support-dashboard-api/pkg/apiErrors"
	"github.com/apeiros/support-dashboard-api/pkg/utils"
)

// GetStoreFinancials retorna o resumo financeiro de uma loja. O tenant é
// informado em ?tenant_id= porque carteira e loja vivem em bancos diferentes.
func GetStoreFinancials(service billing.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetStoreFinancials")

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro tenant_id é obrigatório", nil)
			return
		}

		summary, err := service.ComputeStoreFinancials(r.Context(), storeID, tenantID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo financeiro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetBillsOverview conta os bills distintos criados no período inclusivo
// [start_date, end_date], agrupados por loja. Aceita ?store_id= para
// restringir a uma única loja.
func GetBillsOverview(service billing.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetBillsOverview")

		startStr := r.URL.Query().Get("start_date")
		endStr := r.URL.Query().Get("end_date")
		if startStr == "" || endStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
			return
		}

		start, err := utils.ParseDate(startStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		end, err := utils.ParseDate(endStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		var storeID *string
		if id := r.URL.Query().Get("store_id"); id != "" {
			storeID = &id
		}

		// O limite superior avança até 23:59:59 para incluir o último dia
		report, err := service.CountBillsInRange(r.Context(), *start, utils.EndOfDay(*end), storeID)
		if err != nil {
			if errors.Is(err, billing.ErrInvalidDateRange) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A data de início não pode ser posterior à data de fim", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao contar bills do período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}
