package service

import (
	"context"
	"strings"
	"time"

	"github.com/eventfulhub/eventful-hub-api/internal/domain"
	"github.com/eventfulhub/eventful-hub-api/internal/dto"
	"github.com/eventfulhub/eventful-hub-api/internal/repository"
)

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

// CreateEvent validates the whole request before any write, then persists the
// event with server-assigned timestamps. The store assigns the ID.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	// Validate guarantees the date parses
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, &domain.ValidationError{Field: "date", Reason: "must be a date in YYYY-MM-DD format"}
	}

	attendees := 0
	if req.Attendees != nil {
		attendees = *req.Attendees
	}

	// Price only carries meaning for paid events; a price sent alongside a
	// free ticket is dropped.
	var price *float64
	if req.TicketType == domain.TicketTypePaid {
		price = req.Price
	}

	now := time.Now().UTC()
	event := &domain.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Category:    req.Category,
		Image:       req.Image,
		Attendees:   attendees,
		TicketType:  req.TicketType,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.eventRepo.Insert(ctx, event)
}

// ListEvents retrieves every stored event. An empty store is not an error.
func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

// GetEventByID retrieves an event by ID
func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// DeleteEventByID permanently removes an event. Retrying a completed delete
// yields ErrEventNotFound, never a crash.
func (s *eventService) DeleteEventByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}
