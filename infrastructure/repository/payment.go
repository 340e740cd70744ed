package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/apeiros/support-dashboard-api/infrastructure/database/mongodb"
	"github.com/apeiros/support-dashboard-api/internal/domain"
)

const paymentDetailsCollection = "paymentDetails"

// Status de pagamento considerado para receita
const paymentStatusSuccess = "success"

type PaymentRepository interface {
	// ListSuccessfulByStore retorna os pagamentos aprovados da loja
	// ordenados por createdAt ascendente. A ordenação é explícita porque a
	// regra do "pacote vigente" usa o último pagamento da lista; sem sort o
	// resultado dependeria da ordem física dos documentos.
	ListSuccessfulByStore(ctx context.Context, storeID string) ([]*domain.Payment, error)
}

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(conn *mongodb.Connection) PaymentRepository {
	return &paymentRepository{
		collection: conn.RetailDB().Collection(paymentDetailsCollection),
	}
}

type paymentDoc struct {
	StoreID           interface{} `bson:"storeId"`
	TransactionStatus string      `bson:"transactionStatus"`
	NetAmount         interface{} `bson:"netAmount"`
	PackageName       string      `bson:"packageName"`
	CreatedAt         time.Time   `bson:"createdAt"`
}

func (r *paymentRepository) ListSuccessfulByStore(ctx context.Context, storeID string) ([]*domain.Payment, error) {
	filter := bson.M{
		"storeId":           idFilterValue(storeID),
		"transactionStatus": paymentStatusSuccess,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar pagamentos da loja")
	}
	defer cursor.Close(ctx)

	payments := make([]*domain.Payment, 0)
	for cursor.Next(ctx) {
		var doc paymentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar documento de pagamento")
		}
		payments = append(payments, &domain.Payment{
			StoreID:     idToString(doc.StoreID),
			Status:      doc.TransactionStatus,
			NetAmount:   doc.NetAmount,
			PackageName: doc.PackageName,
			CreatedAt:   doc.CreatedAt,
		})
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de pagamentos")
	}

	return payments, nil
}
