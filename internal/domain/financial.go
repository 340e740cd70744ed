package domain

import "time"

// NoRecord é o valor exibido quando não há dado disponível (sem pacote
// contratado, organização sem telefone etc.).
const NoRecord = "No Record"

// WalletAccount representa o documento de crédito promocional da coleção
// promotionalMessageCredit. Existe no máximo um por tenant.
type WalletAccount struct {
	TenantID            string  `json:"tenant_id"`
	CurrentAvailable    float64 `json:"current_available"`
	LifetimeConsumption float64 `json:"lifetime_consumption"`
}

// Payment representa um documento da coleção paymentDetails. NetAmount é
// mantido bruto pelo mesmo motivo de ExtractionRecord.Amount.
type Payment struct {
	StoreID     string      `json:"store_id"`
	Status      string      `json:"status"`
	NetAmount   interface{} `json:"net_amount"`
	PackageName string      `json:"package_name"`
	CreatedAt   time.Time   `json:"created_at"`
}

// FinancialSummary é o resumo financeiro de uma loja exibido no dashboard.
type FinancialSummary struct {
	DistinctBillCount int     `json:"distinct_bill_count"`
	TotalRevenue      int64   `json:"total_revenue"`
	WalletBalance     float64 `json:"wallet_balance"`
	WalletConsumption float64 `json:"wallet_consumption"`
	TotalPayments     float64 `json:"total_payments"`
	PackageName       string  `json:"package_name"`
}

// StoreOverview é o payload completo da visão de loja: identificação,
// contato, bills de hoje e o resumo financeiro.
type StoreOverview struct {
	StoreID        string            `json:"store_id"`
	StoreName      string            `json:"store_name"`
	TenantID       string            `json:"tenant_id"`
	OnboardedAt    time.Time         `json:"onboarded_at"`
	PhoneNumber    string            `json:"phone_number"`
	TodayBillCount int               `json:"today_bill_count"`
	Financials     *FinancialSummary `json:"financials"`
}
