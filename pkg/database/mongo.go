package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/eventfulhub/eventful-hub-api/pkg/logger"
)

const (
	maxRetries    = 5
	retryInterval = 3 * time.Second
	connTimeout   = 10 * time.Second
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// MongoDB wraps a mongo client bound to one database.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to MongoDB with retries and verifies the connection.
func NewMongo(cfg MongoConfig) (*MongoDB, error) {
	log := logger.Get()

	var client *mongo.Client
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
		}
		cancel()

		if err == nil {
			log.Info("connected to mongodb",
				zap.String("database", cfg.Database),
				zap.Int("attempt", attempt),
			)
			return &MongoDB{
				client: client,
				db:     client.Database(cfg.Database),
			}, nil
		}

		log.Warn("mongodb connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("failed to connect to mongodb after %d attempts: %w", maxRetries, err)
}

// Database returns the bound database handle.
func (m *MongoDB) Database() *mongo.Database {
	return m.db
}

// Collection returns a handle for the named collection.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// HealthCheck pings the primary node.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
