package domain

import "time"

// Store representa o documento da coleção storeDetails.
// As lojas são criadas e mantidas pelos sistemas de onboarding; aqui
// a entidade é somente leitura.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TenantID  string    `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreRef é o resultado da resolução de uma loja pelo nome: os
// identificadores necessários para as demais consultas de agregação.
type StoreRef struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	OnboardedAt time.Time `json:"onboarded_at"`
}

// Organization guarda os dados de contato da organização dona do tenant.
type Organization struct {
	TenantID     string   `json:"tenant_id"`
	PhoneNumbers []string `json:"phone_numbers"`
}
