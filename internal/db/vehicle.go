package db

import (
	"context"

	"github.com/uparkdev/parking-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// VehicleRepository defines the interface for vehicle operations.
type VehicleRepository interface {
	Insert(ctx context.Context, vehicle models.Vehicle) error
	FindByID(ctx context.Context, id string) (*models.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	FindAll(ctx context.Context) ([]models.Vehicle, error)
	Update(ctx context.Context, id string, vehicle models.Vehicle) error
	Delete(ctx context.Context, id string) error
}

// MongoVehicleRepository implements VehicleRepository for MongoDB.
type MongoVehicleRepository struct {
	Collection *mongo.Collection
}

func (r *MongoVehicleRepository) Insert(ctx context.Context, vehicle models.Vehicle) error {
	_, err := r.Collection.InsertOne(ctx, vehicle)
	return err
}

func (r *MongoVehicleRepository) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var vehicle models.Vehicle
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&vehicle); err != nil {
		return nil, mapFindErr(err)
	}
	return &vehicle, nil
}

func (r *MongoVehicleRepository) FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.Collection.FindOne(ctx, bson.M{"plate": plate}).Decode(&vehicle); err != nil {
		return nil, mapFindErr(err)
	}
	return &vehicle, nil
}

func (r *MongoVehicleRepository) FindAll(ctx context.Context) ([]models.Vehicle, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *MongoVehicleRepository) Update(ctx context.Context, id string, vehicle models.Vehicle) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	vehicle.ID = oid
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, vehicle)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoVehicleRepository) Delete(ctx context.Context, id string) error {
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
