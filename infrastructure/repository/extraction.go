package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/apeiros/support-dashboard-api/infrastructure/database/mongodb"
	"github.com/apeiros/support-dashboard-api/internal/domain"
)

const (
	invoiceExtractedCollection = "invoiceExtractedData"
	receiptExtractedCollection = "receiptExtractedData"
	billTransactionsCollection = "billtransactions"
)

// ExtractionRepository lê as três coleções de valores derivados de bills.
// Os valores voltam brutos (interface{}); documentos sem o campo de valor
// voltam com Amount nulo, nunca como erro.
type ExtractionRepository interface {
	ListInvoiceExtractions(ctx context.Context, billIDs []string) ([]*domain.ExtractionRecord, error)
	ListReceiptExtractions(ctx context.Context, billIDs []string) ([]*domain.ExtractionRecord, error)
	ListBillTransactions(ctx context.Context, billIDs []string) ([]*domain.ExtractionRecord, error)
}

type extractionRepository struct {
	invoices     *mongo.Collection
	receipts     *mongo.Collection
	transactions *mongo.Collection
}

func NewExtractionRepository(conn *mongodb.Connection) ExtractionRepository {
	return &extractionRepository{
		invoices:     conn.BillingDB().Collection(invoiceExtractedCollection),
		receipts:     conn.BillingDB().Collection(receiptExtractedCollection),
		transactions: conn.BillingDB().Collection(billTransactionsCollection),
	}
}

// Os três formatos de documento diferem apenas em onde guardam o valor:
// InvoiceTotal.value, Total.value ou billAmount na raiz.

type nestedAmount struct {
	Value interface{} `bson:"value"`
}

type invoiceDoc struct {
	BillID       string       `bson:"billId"`
	InvoiceTotal nestedAmount `bson:"InvoiceTotal"`
}

type receiptDoc struct {
	BillID string       `bson:"billId"`
	Total  nestedAmount `bson:"Total"`
}

type transactionDoc struct {
	BillID     string      `bson:"billId"`
	BillAmount interface{} `bson:"billAmount"`
}

func (r *extractionRepository) ListInvoiceExtractions(ctx context.Context, billIDs []string) ([]*domain.ExtractionRecord, error) {
	cursor, err := r.invoices.Find(ctx, billIDFilter(billIDs))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar extrações de invoice")
	}
	defer cursor.Close(ctx)

	records := make([]*domain.ExtractionRecord, 0)
	for cursor.Next(ctx) {
		var doc invoiceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar extração de invoice")
		}
		records = append(records, &domain.ExtractionRecord{BillID: doc.BillID, Amount: doc.InvoiceTotal.Value})
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de extrações de invoice")
	}

	return records, nil
}

func (r *extractionRepository) ListReceiptExtractions(ctx context.Context, billIDs []string) ([]*domain.ExtractionRecord, error) {
	cursor, err := r.receipts.Find(ctx, billIDFilter(billIDs))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar extrações de receipt")
	}
	defer cursor.Close(ctx)

	records := make([]*domain.ExtractionRecord, 0)
	for cursor.Next(ctx) {
		var doc receiptDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar extração de receipt")
		}
		records = append(records, &domain.ExtractionRecord{BillID: doc.BillID, Amount: doc.Total.Value})
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de extrações de receipt")
	}

	return records, nil
}

func (r *extractionRepository) ListBillTransactions(ctx context.Context, billIDs []string) ([]*domain.ExtractionRecord, error) {
	cursor, err := r.transactions.Find(ctx, billIDFilter(billIDs))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar transações de bill")
	}
	defer cursor.Close(ctx)

	records := make([]*domain.ExtractionRecord, 0)
	for cursor.Next(ctx) {
		var doc transactionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar transação de bill")
		}
		records = append(records, &domain.ExtractionRecord{BillID: doc.BillID, Amount: doc.BillAmount})
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de transações de bill")
	}

	return records, nil
}

func billIDFilter(billIDs []string) bson.M {
	return bson.M{"billId": bson.M{"$in": billIDs}}
}
