package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket types
const (
	TicketTypeFree = "free"
	TicketTypePaid = "paid"
)

// Categories is the closed set of event categories accepted by the API.
// The frontend may render extra categories for filtering; this list is authoritative.
var Categories = []string{"music", "sports", "tech", "education", "art", "other"}

// IsValidCategory reports whether c is an accepted category.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidTicketType reports whether t is an accepted ticket type.
func IsValidTicketType(t string) bool {
	return t == TicketTypeFree || t == TicketTypePaid
}

// Event represents an event document stored in the eventitems collection.
// Price is a pointer because it is only present for paid events.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Location    string             `bson:"location" json:"location"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Attendees   int                `bson:"attendees" json:"attendees"`
	TicketType  string             `bson:"ticketType" json:"ticketType"`
	Price       *float64           `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
