package repository

import (
	"context"

	"github.com/eventfulhub/eventful-hub-api/internal/domain"
)

// EventRepository defines the interface for event data access.
// Lookups return (nil, nil) when no document matches; malformed identifiers
// yield domain.ErrInvalidEventID.
type EventRepository interface {
	// Insert persists a new event and returns it with its store-assigned ID
	Insert(ctx context.Context, event *domain.Event) (*domain.Event, error)
	// FindAll retrieves every stored event in natural order
	FindAll(ctx context.Context) ([]*domain.Event, error)
	// FindByID retrieves an event by its hex ID
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	// DeleteByID removes an event by its hex ID and returns the removed document
	DeleteByID(ctx context.Context, id string) (*domain.Event, error)
}
