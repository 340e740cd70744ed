package billing

import "errors"

var (
	// ErrStoreNotFound indica que não existe loja com o nome informado.
	// É o único erro de resolução exposto ao chamador; falhas de acesso ao
	// banco de documentos sobem como erro de infraestrutura e abortam a
	// agregação inteira, sem resumo parcial.
	ErrStoreNotFound = errors.New("loja não encontrada")

	// ErrInvalidDateRange indica que a data inicial é posterior à final.
	ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")
)
