package db

import (
	"context"

	"github.com/uparkdev/parking-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccessRepository defines the interface for access session operations.
type AccessRepository interface {
	Insert(ctx context.Context, access models.Access) error
	FindByID(ctx context.Context, id string) (*models.Access, error)
	FindAll(ctx context.Context) ([]models.Access, error)
	FindOpenByPlate(ctx context.Context, plate string) (*models.Access, error)
	Update(ctx context.Context, id string, access models.Access) error
	Delete(ctx context.Context, id string) error
}

// MongoAccessRepository implements AccessRepository for MongoDB.
type MongoAccessRepository struct {
	Collection *mongo.Collection
}

func (r *MongoAccessRepository) Insert(ctx context.Context, access models.Access) error {
	_, err := r.Collection.InsertOne(ctx, access)
	return err
}

func (r *MongoAccessRepository) FindByID(ctx context.Context, id string) (*models.Access, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var access models.Access
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&access); err != nil {
		return nil, mapFindErr(err)
	}
	return &access, nil
}

func (r *MongoAccessRepository) FindAll(ctx context.Context) ([]models.Access, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	accesses := []models.Access{}
	if err := cursor.All(ctx, &accesses); err != nil {
		return nil, err
	}
	return accesses, nil
}

// FindOpenByPlate returns the open session for a plate, if any. A
// session is open while no exit timestamp has been recorded.
func (r *MongoAccessRepository) FindOpenByPlate(ctx context.Context, plate string) (*models.Access, error) {
	filter := bson.M{"plate": plate, "exit": bson.M{"$exists": false}}
	var access models.Access
	if err := r.Collection.FindOne(ctx, filter).Decode(&access); err != nil {
		return nil, mapFindErr(err)
	}
	return &access, nil
}

func (r *MongoAccessRepository) Update(ctx context.Context, id string, access models.Access) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	access.ID = oid
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, access)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAccessRepository) Delete(ctx context.Context, id string) error {
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
