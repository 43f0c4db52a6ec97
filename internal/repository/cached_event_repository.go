package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/eventfulhub/eventful-hub-api/internal/domain"
	"github.com/eventfulhub/eventful-hub-api/pkg/logger"
	"github.com/eventfulhub/eventful-hub-api/pkg/redis"
)

const (
	// Cache key prefixes
	eventDetailKeyPrefix = "event:detail:"
	eventListKey         = "event:list:all"

	// Default TTL for event caches
	eventCacheTTL = 5 * time.Minute
)

// CachedEventRepository wraps an EventRepository with Redis read-through
// caching. Writes invalidate; reads fall back to the inner repository when the
// cache misses or misbehaves.
type CachedEventRepository struct {
	repo  EventRepository
	cache *redis.Client
}

// NewCachedEventRepository creates a new CachedEventRepository
func NewCachedEventRepository(repo EventRepository, cache *redis.Client) *CachedEventRepository {
	return &CachedEventRepository{
		repo:  repo,
		cache: cache,
	}
}

// Insert persists a new event and invalidates the list cache
func (r *CachedEventRepository) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	stored, err := r.repo.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	r.cache.Del(ctx, eventListKey)
	return stored, nil
}

// FindAll retrieves all events with caching
func (r *CachedEventRepository) FindAll(ctx context.Context) ([]*domain.Event, error) {
	cached, err := r.cache.Get(ctx, eventListKey)
	if err == nil && cached != "" {
		var events []*domain.Event
		if err := json.Unmarshal([]byte(cached), &events); err == nil {
			return events, nil
		}
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Get().Warn("cache read failed", zap.String("key", eventListKey), zap.Error(err))
	}

	events, err := r.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(events); err == nil {
		r.cache.Set(ctx, eventListKey, string(data), eventCacheTTL)
	}
	return events, nil
}

// FindByID retrieves an event by ID with caching
func (r *CachedEventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	cacheKey := eventDetailKeyPrefix + id
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var event domain.Event
		if err := json.Unmarshal([]byte(cached), &event); err == nil {
			return &event, nil
		}
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Get().Warn("cache read failed", zap.String("key", cacheKey), zap.Error(err))
	}

	event, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	if data, err := json.Marshal(event); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), eventCacheTTL)
	}
	return event, nil
}

// DeleteByID removes an event and invalidates its caches
func (r *CachedEventRepository) DeleteByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := r.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event != nil {
		r.cache.Del(ctx, eventDetailKeyPrefix+id)
		r.cache.Del(ctx, eventListKey)
	}
	return event, nil
}
