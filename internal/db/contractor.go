package db

import (
	"context"

	"github.com/uparkdev/parking-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContractorRepository defines the interface for contractor operations.
// The contractor document owns the lot and event associations; the
// find-by-lot/event queries provide the reverse views.
type ContractorRepository interface {
	Insert(ctx context.Context, contractor models.Contractor) error
	FindByID(ctx context.Context, id string) (*models.Contractor, error)
	FindByTaxID(ctx context.Context, taxID string) (*models.Contractor, error)
	FindByEmail(ctx context.Context, email string) (*models.Contractor, error)
	FindByLot(ctx context.Context, lotID primitive.ObjectID) ([]models.Contractor, error)
	FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Contractor, error)
	FindAll(ctx context.Context) ([]models.Contractor, error)
	Update(ctx context.Context, id string, contractor models.Contractor) error
	Delete(ctx context.Context, id string) error
}

// MongoContractorRepository implements ContractorRepository for MongoDB.
type MongoContractorRepository struct {
	Collection *mongo.Collection
}

func (r *MongoContractorRepository) Insert(ctx context.Context, contractor models.Contractor) error {
	_, err := r.Collection.InsertOne(ctx, contractor)
	return err
}

func (r *MongoContractorRepository) FindByID(ctx context.Context, id string) (*models.Contractor, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var contractor models.Contractor
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&contractor); err != nil {
		return nil, mapFindErr(err)
	}
	return &contractor, nil
}

func (r *MongoContractorRepository) FindByTaxID(ctx context.Context, taxID string) (*models.Contractor, error) {
	var contractor models.Contractor
	if err := r.Collection.FindOne(ctx, bson.M{"tax_id": taxID}).Decode(&contractor); err != nil {
		return nil, mapFindErr(err)
	}
	return &contractor, nil
}

func (r *MongoContractorRepository) FindByEmail(ctx context.Context, email string) (*models.Contractor, error) {
	var contractor models.Contractor
	if err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&contractor); err != nil {
		return nil, mapFindErr(err)
	}
	return &contractor, nil
}

func (r *MongoContractorRepository) FindByLot(ctx context.Context, lotID primitive.ObjectID) ([]models.Contractor, error) {
	return r.findMany(ctx, bson.M{"lot_ids": lotID})
}

func (r *MongoContractorRepository) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Contractor, error) {
	return r.findMany(ctx, bson.M{"event_ids": eventID})
}

func (r *MongoContractorRepository) FindAll(ctx context.Context) ([]models.Contractor, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoContractorRepository) findMany(ctx context.Context, filter bson.M) ([]models.Contractor, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	contractors := []models.Contractor{}
	if err := cursor.All(ctx, &contractors); err != nil {
		return nil, err
	}
	return contractors, nil
}

func (r *MongoContractorRepository) Update(ctx context.Context, id string, contractor models.Contractor) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	contractor.ID = oid
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, contractor)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoContractorRepository) Delete(ctx context.Context, id string) error {
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
