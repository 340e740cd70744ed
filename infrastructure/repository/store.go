package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/apeiros/support-dashboard-api/infrastructure/database/mongodb"
	"github.com/apeiros/support-dashboard-api/internal/domain"
)

const storeDetailsCollection = "storeDetails"

type StoreRepository interface {
	// GetByName retorna nil, nil quando não existe loja com o nome exato.
	GetByName(ctx context.Context, name string) (*domain.Store, error)
	ListStoreNames(ctx context.Context) ([]string, error)
	// ListByIDs retorna apenas as lojas com documento cadastrado; ids sem
	// correspondência são simplesmente omitidos do resultado.
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Store, error)
}

type storeRepository struct {
	collection *mongo.Collection
}

func NewStoreRepository(conn *mongodb.Connection) StoreRepository {
	return &storeRepository{
		collection: conn.RetailDB().Collection(storeDetailsCollection),
	}
}

type storeDoc struct {
	ID        interface{} `bson:"_id"`
	StoreName string      `bson:"storeName"`
	TenantID  string      `bson:"tenantId"`
	CreatedAt time.Time   `bson:"createdAt"`
}

func (d storeDoc) toDomain() *domain.Store {
	return &domain.Store{
		ID:        idToString(d.ID),
		Name:      d.StoreName,
		TenantID:  d.TenantID,
		CreatedAt: d.CreatedAt,
	}
}

func (r *storeRepository) GetByName(ctx context.Context, name string) (*domain.Store, error) {
	var doc storeDoc

	err := r.collection.FindOne(ctx, bson.M{"storeName": name}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao consultar loja pelo nome")
	}

	return doc.toDomain(), nil
}

func (r *storeRepository) ListStoreNames(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "storeName", bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar nomes de lojas")
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}

	return names, nil
}

func (r *storeRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Store, error) {
	filterIDs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		filterIDs = append(filterIDs, idFilterValue(id))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": filterIDs}})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar lojas pelos ids")
	}
	defer cursor.Close(ctx)

	stores := make([]*domain.Store, 0, len(ids))
	for cursor.Next(ctx) {
		var doc storeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar documento de loja")
		}
		stores = append(stores, doc.toDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de lojas")
	}

	return stores, nil
}
