package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/apeiros/support-dashboard-api/internal/config"
)

// Connection encapsula o cliente Mongo e os três bancos lógicos usados
// pelo dashboard. Todos pertencem a sistemas upstream; este serviço só
// executa leituras.
type Connection struct {
	client     *mongo.Client
	retailDB   *mongo.Database
	billingDB  *mongo.Database
	customerDB *mongo.Database
}

func NewConnection(ctx context.Context, cfg config.Mongo) (*Connection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Connection{
		client:     client,
		retailDB:   client.Database(cfg.RetailDB),
		billingDB:  client.Database(cfg.BillingDB),
		customerDB: client.Database(cfg.CustomerDB),
	}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// RetailDB contém storeDetails, organizationDetails e paymentDetails
func (c *Connection) RetailDB() *mongo.Database {
	return c.retailDB
}

// BillingDB contém billRequest e as coleções de extração
func (c *Connection) BillingDB() *mongo.Database {
	return c.billingDB
}

// CustomerDB contém promotionalMessageCredit e dashboardUsers
func (c *Connection) CustomerDB() *mongo.Database {
	return c.customerDB
}
