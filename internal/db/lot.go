package db

import (
	"context"

	"github.com/uparkdev/parking-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LotRepository defines the interface for parking lot operations.
type LotRepository interface {
	Insert(ctx context.Context, lot models.Lot) error
	FindByID(ctx context.Context, id string) (*models.Lot, error)
	FindAll(ctx context.Context) ([]models.Lot, error)
	Update(ctx context.Context, id string, lot models.Lot) error
	Delete(ctx context.Context, id string) error
}

// MongoLotRepository implements LotRepository for MongoDB.
type MongoLotRepository struct {
	Collection *mongo.Collection
}

func (r *MongoLotRepository) Insert(ctx context.Context, lot models.Lot) error {
	_, err := r.Collection.InsertOne(ctx, lot)
	return err
}

func (r *MongoLotRepository) FindByID(ctx context.Context, id string) (*models.Lot, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var lot models.Lot
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&lot); err != nil {
		return nil, mapFindErr(err)
	}
	return &lot, nil
}

func (r *MongoLotRepository) FindAll(ctx context.Context) ([]models.Lot, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	lots := []models.Lot{}
	if err := cursor.All(ctx, &lots); err != nil {
		return nil, err
	}
	return lots, nil
}

func (r *MongoLotRepository) Update(ctx context.Context, id string, lot models.Lot) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	lot.ID = oid
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, lot)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLotRepository) Delete(ctx context.Context, id string) error {
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
