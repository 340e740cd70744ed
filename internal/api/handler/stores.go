package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/apeiros/support-dashboard-api/internal/usecases/billing"
	"github.com/apeiros/support-dashboard-api/pkg/apiErrors"
)

type ListStoresResponse struct {
	Stores []string `json:"stores"`
}

// ListStores retorna os nomes distintos de lojas para popular o seletor do
// dashboard de suporte
func ListStores(service billing.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListStores")

		names, err := service.ListStoreNames(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListStoresResponse{Stores: names})
	}
}

// GetStoreOverview retorna a visão completa de uma loja resolvida pelo nome
// exato informado em ?name=
func GetStoreOverview(service billing.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetStoreOverview")

		storeName := r.URL.Query().Get("name")
		if storeName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro name é obrigatório", nil)
			return
		}

		overview, err := service.GetStoreOverview(r.Context(), storeName)
		if err != nil {
			if errors.Is(err, billing.ErrStoreNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", map[string]string{
					"store_name": storeName,
				})
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar visão da loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}
