package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventfulhub/eventful-hub-api/internal/domain"
	"github.com/eventfulhub/eventful-hub-api/pkg/telemetry"
)

// eventCollection is the collection name used by the original data set.
const eventCollection = "eventitems"

// MongoEventRepository implements EventRepository using MongoDB
type MongoEventRepository struct {
	coll *mongo.Collection
}

// NewMongoEventRepository creates a new MongoEventRepository
func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{coll: db.Collection(eventCollection)}
}

// Insert persists a new event. The store assigns the ObjectID; it is copied
// back onto the returned event.
func (r *MongoEventRepository) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "repository.events.insert")
	defer span.End()

	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		telemetry.SetSpanError(span, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected inserted id type %T", domain.ErrStoreUnavailable, res.InsertedID)
	}
	event.ID = oid
	return event, nil
}

// FindAll retrieves every event in the store's natural order. An empty store
// yields an empty slice, never an error.
func (r *MongoEventRepository) FindAll(ctx context.Context) ([]*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "repository.events.find_all")
	defer span.End()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		telemetry.SetSpanError(span, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	events := make([]*domain.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		telemetry.SetSpanError(span, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return events, nil
}

// FindByID retrieves an event by its hex ID. Returns (nil, nil) when no
// document matches.
func (r *MongoEventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "repository.events.find_by_id")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidEventID
	}

	var event domain.Event
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		telemetry.SetSpanError(span, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &event, nil
}

// DeleteByID removes an event and returns the removed document. A concurrent
// delete of the same id sees no document.
func (r *MongoEventRepository) DeleteByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "repository.events.delete_by_id")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidEventID
	}

	var event domain.Event
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		telemetry.SetSpanError(span, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &event, nil
}
