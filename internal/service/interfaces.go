package service

import (
	"context"

	"github.com/eventfulhub/eventful-hub-api/internal/domain"
	"github.com/eventfulhub/eventful-hub-api/internal/dto"
)

// EventService defines the interface for event business logic
type EventService interface {
	// CreateEvent validates the request, assigns server-controlled fields and persists the event
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error)
	// ListEvents retrieves every stored event
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	// GetEventByID retrieves an event by ID
	GetEventByID(ctx context.Context, id string) (*domain.Event, error)
	// DeleteEventByID permanently removes an event and returns the removed record
	DeleteEventByID(ctx context.Context, id string) (*domain.Event, error)
}
