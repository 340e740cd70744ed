package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/apeiros/support-dashboard-api/infrastructure/database/mongodb"
	"github.com/apeiros/support-dashboard-api/internal/domain"
)

const walletCollection = "promotionalMessageCredit"

type WalletRepository interface {
	// GetByTenantID retorna nil, nil quando o tenant não tem carteira.
	GetByTenantID(ctx context.Context, tenantID string) (*domain.WalletAccount, error)
}

type walletRepository struct {
	collection *mongo.Collection
}

func NewWalletRepository(conn *mongodb.Connection) WalletRepository {
	return &walletRepository{
		collection: conn.CustomerDB().Collection(walletCollection),
	}
}

type walletDoc struct {
	TenantID            string  `bson:"tenantId"`
	CurrentAvailable    float64 `bson:"currentAvailable"`
	LifetimeConsumption float64 `bson:"lifetimeConsumption"`
}

func (r *walletRepository) GetByTenantID(ctx context.Context, tenantID string) (*domain.WalletAccount, error) {
	var doc walletDoc

	err := r.collection.FindOne(ctx, bson.M{"tenantId": tenantID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao consultar carteira do tenant")
	}

	return &domain.WalletAccount{
		TenantID:            doc.TenantID,
		CurrentAvailable:    doc.CurrentAvailable,
		LifetimeConsumption: doc.LifetimeConsumption,
	}, nil
}
