package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateEvent inserts a new event after checking that the slug is free within
// the tenant. The (tenant_id, slug) pair also carries a unique index so a
// concurrent insert between check and write still fails cleanly.
func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"tenant_id": event.TenantID, "slug": event.Slug})
	if err != nil {
		return nil, fmt.Errorf("error checking slug availability: %w", err)
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	if _, err := col.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("error inserting event: %w", err)
	}

	return event, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, tenantID, id uuid.UUID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": id, "tenant_id": tenantID}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error fetching event %s: %w", id, err)
	}

	return &event, nil
}

func (mdb *MongodbRepo) GetEventBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"tenant_id": tenantID, "slug": slug}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error fetching event %q: %w", slug, err)
	}

	return &event, nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context, tenantID uuid.UUID, status EventStatus, offset, limit int) ([]*Event, int, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"tenant_id": tenantID}
	if status != "" {
		filter["status"] = status
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_at", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("error decoding events: %w", err)
	}

	return events, int(total), nil
}

// UpdateEvent replaces the stored document in full. Tenant scoping in the
// filter keeps an id collision from ever writing across workspaces.
func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.ReplaceOne(ctx, bson.M{"_id": event.ID, "tenant_id": event.TenantID}, event)
	if err != nil {
		return nil, fmt.Errorf("error updating event %s: %w", event.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrEventNotFound
	}

	return event, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, tenantID, id uuid.UUID) error {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id, "tenant_id": tenantID})
	if err != nil {
		return fmt.Errorf("error deleting event %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrEventNotFound
	}

	return nil
}
