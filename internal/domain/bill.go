package domain

import "time"

// BillRef é a projeção mínima de um documento da coleção billRequest:
// apenas o identificador do bill e a loja que o originou.
type BillRef struct {
	BillID    string    `json:"bill_id"`
	StoreID   string    `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ExtractionRecord é um registro derivado (invoice, receipt ou transação)
// com o valor monetário bruto extraído do documento.
//
// O campo Amount é mantido como interface{} de propósito: os documentos
// de extração podem vir sem o campo, com valor nulo ou com o valor em
// formatos diferentes (número, string). A coerção para float acontece
// na agregação, nunca na leitura.
type ExtractionRecord struct {
	BillID string      `json:"bill_id"`
	Amount interface{} `json:"amount"`
}

// StoreBillCount é uma linha do relatório de bills por loja.
type StoreBillCount struct {
	StoreName string `json:"store_name"`
	BillCount int    `json:"bill_count"`
}

// BillCountReport é o resultado de uma contagem de bills por período.
//
// PerStore só contém lojas com documento correspondente em storeDetails:
// bills órfãos (storeId sem loja cadastrada) são descartados do
// detalhamento, mas continuam contando em TotalDistinctBills, que é
// calculado sobre o conjunto sem join. Esse comportamento é intencional
// e está coberto por testes.
type BillCountReport struct {
	PerStore           []StoreBillCount `json:"per_store"`
	TotalDistinctBills int              `json:"total_distinct_bills"`
}
