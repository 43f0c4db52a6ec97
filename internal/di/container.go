package di

import (
	"context"

	"go.uber.org/zap"

	"github.com/eventfulhub/eventful-hub-api/internal/handler"
	"github.com/eventfulhub/eventful-hub-api/internal/repository"
	"github.com/eventfulhub/eventful-hub-api/internal/service"
	"github.com/eventfulhub/eventful-hub-api/pkg/config"
	"github.com/eventfulhub/eventful-hub-api/pkg/database"
	"github.com/eventfulhub/eventful-hub-api/pkg/logger"
	"github.com/eventfulhub/eventful-hub-api/pkg/redis"
)

// Container wires all application dependencies.
type Container struct {
	Config *config.Config
	DB     *database.MongoDB
	Redis  *redis.Client

	EventHandler  *handler.EventHandler
	HealthHandler *handler.HealthHandler
}

// NewContainer builds the dependency graph. MongoDB is required; Redis is
// optional and the service degrades to uncached repository access without it.
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Get()

	db, err := database.NewMongo(database.MongoConfig{
		URI:      cfg.MongoDB.URI,
		Database: cfg.MongoDB.Database,
	})
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("redis unavailable, running without cache", zap.Error(err))
			redisClient = nil
		}
	}

	var eventRepo repository.EventRepository = repository.NewMongoEventRepository(db.Database())
	if redisClient != nil {
		eventRepo = repository.NewCachedEventRepository(eventRepo, redisClient)
	}

	eventService := service.NewEventService(eventRepo)

	return &Container{
		Config:        cfg,
		DB:            db,
		Redis:         redisClient,
		EventHandler:  handler.NewEventHandler(eventService),
		HealthHandler: handler.NewHealthHandler(db, redisClient),
	}, nil
}

// Close releases held connections.
func (c *Container) Close(ctx context.Context) {
	log := logger.Get()

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn("failed to close redis", zap.Error(err))
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Warn("failed to close mongodb", zap.Error(err))
		}
	}
}
