package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eventfulhub/eventful-hub-api/pkg/logger"
)

const (
	maxRetries    = 3
	retryInterval = 2 * time.Second
	pingTimeout   = 5 * time.Second
)

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client wraps a go-redis client.
type Client struct {
	rdb *goredis.Client
}

// NewClient connects to Redis with retries.
func NewClient(cfg Config) (*Client, error) {
	log := logger.Get()

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = rdb.Ping(ctx).Err()
		cancel()

		if err == nil {
			log.Info("connected to redis", zap.String("addr", cfg.Addr))
			return &Client{rdb: rdb}, nil
		}

		log.Warn("redis connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		time.Sleep(retryInterval)
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
}

// Wrap adopts an existing go-redis client. Used by tests with redismock.
func Wrap(rdb *goredis.Client) *Client {
	return &Client{rdb: rdb}
}

// Get returns the string value at key. Returns redis.Nil error on miss.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

// Set stores value at key with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Del removes the given keys.
func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

// HealthCheck pings the server.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Nil is the sentinel error returned on cache miss.
var Nil = goredis.Nil
