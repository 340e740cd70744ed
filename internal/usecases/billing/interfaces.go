package billing

import (
	"context"
	"time"

	"github.com/apeiros/support-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/aggregator_mock.go -package=mocks

// Aggregator é o serviço de agregação de billing consumido pela camada de
// apresentação. Todas as operações são leituras sobre o banco de
// documentos e ou completam com o resultado inteiro ou falham.
type Aggregator interface {
	// ListStoreNames retorna os nomes distintos de lojas conhecidas.
	ListStoreNames(ctx context.Context) ([]string, error)

	// ResolveStore resolve uma loja pelo nome exato e retorna seus
	// identificadores. Falha com ErrStoreNotFound quando não existe.
	ResolveStore(ctx context.Context, name string) (*domain.StoreRef, error)

	// CountBillsInRange conta os bills criados no intervalo inclusivo
	// [start, end], opcionalmente restritos a uma loja.
	CountBillsInRange(ctx context.Context, start, end time.Time, storeID *string) (*domain.BillCountReport, error)

	// ComputeStoreFinancials monta o resumo financeiro de uma loja.
	ComputeStoreFinancials(ctx context.Context, storeID, tenantID string) (*domain.FinancialSummary, error)

	// GetStoreOverview resolve a loja pelo nome e retorna o payload
	// completo exibido no dashboard de suporte.
	GetStoreOverview(ctx context.Context, storeName string) (*domain.StoreOverview, error)
}
