package db

import (
	"context"

	"github.com/uparkdev/parking-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository defines the interface for event operations.
type EventRepository interface {
	Insert(ctx context.Context, event models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, id string, event models.Event) error
	Delete(ctx context.Context, id string) error
}

// MongoEventRepository implements EventRepository for MongoDB.
type MongoEventRepository struct {
	Collection *mongo.Collection
}

func (r *MongoEventRepository) Insert(ctx context.Context, event models.Event) error {
	_, err := r.Collection.InsertOne(ctx, event)
	return err
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var event models.Event
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&event); err != nil {
		return nil, mapFindErr(err)
	}
	return &event, nil
}

func (r *MongoEventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *MongoEventRepository) Update(ctx context.Context, id string, event models.Event) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	event.ID = oid
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, event)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoEventRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
