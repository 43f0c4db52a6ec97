package dto

import (
	"strings"
	"time"

	"github.com/eventfulhub/eventful-hub-api/internal/domain"
)

// DateLayout is the calendar date format accepted on event creation.
const DateLayout = "2006-01-02"

// CreateEventRequest represents the request to create a new event.
// Attendees and Price are pointers to distinguish "omitted" from zero.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Attendees   *int     `json:"attendees"`
	TicketType  string   `json:"ticketType"`
	Price       *float64 `json:"price"`
}

// Validate checks the request as a whole and returns a ValidationError naming
// the first offending field, or nil if the request is acceptable.
func (r *CreateEventRequest) Validate() *domain.ValidationError {
	if strings.TrimSpace(r.Title) == "" {
		return &domain.ValidationError{Field: "title", Reason: "is required"}
	}
	if r.Description == "" {
		return &domain.ValidationError{Field: "description", Reason: "is required"}
	}
	if r.Date == "" {
		return &domain.ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return &domain.ValidationError{Field: "date", Reason: "must be a date in YYYY-MM-DD format"}
	}
	if r.Time == "" {
		return &domain.ValidationError{Field: "time", Reason: "is required"}
	}
	if r.Location == "" {
		return &domain.ValidationError{Field: "location", Reason: "is required"}
	}
	if r.Category == "" {
		return &domain.ValidationError{Field: "category", Reason: "is required"}
	}
	if !domain.IsValidCategory(r.Category) {
		return &domain.ValidationError{Field: "category", Reason: "must be one of " + strings.Join(domain.Categories, ", ")}
	}
	if r.Image == "" {
		return &domain.ValidationError{Field: "image", Reason: "is required"}
	}
	if r.Attendees != nil && *r.Attendees < 0 {
		return &domain.ValidationError{Field: "attendees", Reason: "cannot be negative"}
	}
	if r.TicketType == "" {
		return &domain.ValidationError{Field: "ticketType", Reason: "is required"}
	}
	if !domain.IsValidTicketType(r.TicketType) {
		return &domain.ValidationError{Field: "ticketType", Reason: "must be either free or paid"}
	}
	// A price is checked whenever it is present, even on free events.
	if r.Price != nil && *r.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "cannot be negative"}
	}
	if r.TicketType == domain.TicketTypePaid && r.Price == nil {
		return &domain.ValidationError{Field: "price", Reason: "is required for paid events"}
	}
	return nil
}

// EventResponse represents the response for an event
type EventResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Attendees   int      `json:"attendees"`
	TicketType  string   `json:"ticketType"`
	Price       *float64 `json:"price,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// FromEvent converts a domain event to its response representation.
func FromEvent(event *domain.Event) *EventResponse {
	return &EventResponse{
		ID:          event.ID.Hex(),
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.UTC().Format(time.RFC3339),
		Time:        event.Time,
		Location:    event.Location,
		Category:    event.Category,
		Image:       event.Image,
		Attendees:   event.Attendees,
		TicketType:  event.TicketType,
		Price:       event.Price,
		CreatedAt:   event.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromEvents converts a slice of domain events.
func FromEvents(events []*domain.Event) []*EventResponse {
	out := make([]*EventResponse, len(events))
	for i, e := range events {
		out[i] = FromEvent(e)
	}
	return out
}
