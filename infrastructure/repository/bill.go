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

const billRequestCollection = "billRequest"

type BillRepository interface {
	// ListRefsInRange retorna os bills com createdAt dentro do intervalo
	// inclusivo [start, end], opcionalmente restritos a uma loja.
	ListRefsInRange(ctx context.Context, start, end time.Time, storeID *string) ([]*domain.BillRef, error)
	// ListBillIDsByStore retorna os billIds da loja, com repetições se
	// houver; a deduplicação é responsabilidade da agregação.
	ListBillIDsByStore(ctx context.Context, storeID string) ([]string, error)
}

type billRepository struct {
	collection *mongo.Collection
}

func NewBillRepository(conn *mongodb.Connection) BillRepository {
	return &billRepository{
		collection: conn.BillingDB().Collection(billRequestCollection),
	}
}

type billDoc struct {
	BillID    string      `bson:"billId"`
	StoreID   interface{} `bson:"storeId"`
	CreatedAt time.Time   `bson:"createdAt"`
}

func (r *billRepository) ListRefsInRange(ctx context.Context, start, end time.Time, storeID *string) ([]*domain.BillRef, error) {
	filter := bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
	}
	if storeID != nil {
		filter["storeId"] = idFilterValue(*storeID)
	}

	opts := options.Find().SetProjection(bson.M{"billId": 1, "storeId": 1, "createdAt": 1, "_id": 0})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar bills por período")
	}
	defer cursor.Close(ctx)

	refs := make([]*domain.BillRef, 0)
	for cursor.Next(ctx) {
		var doc billDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar documento de bill")
		}
		refs = append(refs, &domain.BillRef{
			BillID:    doc.BillID,
			StoreID:   idToString(doc.StoreID),
			CreatedAt: doc.CreatedAt,
		})
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de bills")
	}

	return refs, nil
}

func (r *billRepository) ListBillIDsByStore(ctx context.Context, storeID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"billId": 1, "_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{"storeId": idFilterValue(storeID)}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar bills da loja")
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var doc billDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar documento de bill")
		}
		ids = append(ids, doc.BillID)
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de bills")
	}

	return ids, nil
}
