package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/apeiros/support-dashboard-api/infrastructure/database/mongodb"
	"github.com/apeiros/support-dashboard-api/internal/domain"
)

const organizationDetailsCollection = "organizationDetails"

type OrganizationRepository interface {
	// GetByTenantID retorna nil, nil quando o tenant não tem organização.
	GetByTenantID(ctx context.Context, tenantID string) (*domain.Organization, error)
}

type organizationRepository struct {
	collection *mongo.Collection
}

func NewOrganizationRepository(conn *mongodb.Connection) OrganizationRepository {
	return &organizationRepository{
		collection: conn.RetailDB().Collection(organizationDetailsCollection),
	}
}

type organizationDoc struct {
	TenantID    string   `bson:"tenantId"`
	PhoneNumber []string `bson:"phoneNumber"`
}

func (r *organizationRepository) GetByTenantID(ctx context.Context, tenantID string) (*domain.Organization, error) {
	var doc organizationDoc

	opts := options.FindOne().SetProjection(bson.M{"tenantId": 1, "phoneNumber": 1})

	err := r.collection.FindOne(ctx, bson.M{"tenantId": tenantID}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao consultar organização do tenant")
	}

	return &domain.Organization{
		TenantID:     doc.TenantID,
		PhoneNumbers: doc.PhoneNumber,
	}, nil
}
