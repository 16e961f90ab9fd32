package db

import (
	"context"

	"github.com/uparkdev/parking-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TimeRateRepository defines the interface for time-fraction rate operations.
type TimeRateRepository interface {
	Insert(ctx context.Context, rate models.TimeRate) error
	FindByID(ctx context.Context, id string) (*models.TimeRate, error)
	FindAll(ctx context.Context) ([]models.TimeRate, error)
	Update(ctx context.Context, id string, rate models.TimeRate) error
	Delete(ctx context.Context, id string) error
}

// DailyRateRepository defines the interface for daily rate operations.
type DailyRateRepository interface {
	Insert(ctx context.Context, rate models.DailyRate) error
	FindByID(ctx context.Context, id string) (*models.DailyRate, error)
	FindByLabel(ctx context.Context, label string) (*models.DailyRate, error)
	FindAll(ctx context.Context) ([]models.DailyRate, error)
	Update(ctx context.Context, id string, rate models.DailyRate) error
	Delete(ctx context.Context, id string) error
}

// MonthlyRateRepository defines the interface for monthly rate operations.
type MonthlyRateRepository interface {
	Insert(ctx context.Context, rate models.MonthlyRate) error
	FindByID(ctx context.Context, id string) (*models.MonthlyRate, error)
	FindAll(ctx context.Context) ([]models.MonthlyRate, error)
	Update(ctx context.Context, id string, rate models.MonthlyRate) error
	Delete(ctx context.Context, id string) error
}

// MongoTimeRateRepository implements TimeRateRepository for MongoDB.
type MongoTimeRateRepository struct {
	Collection *mongo.Collection
}

func (r *MongoTimeRateRepository) Insert(ctx context.Context, rate models.TimeRate) error {
	_, err := r.Collection.InsertOne(ctx, rate)
	return err
}

func (r *MongoTimeRateRepository) FindByID(ctx context.Context, id string) (*models.TimeRate, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var rate models.TimeRate
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rate); err != nil {
		return nil, mapFindErr(err)
	}
	return &rate, nil
}

func (r *MongoTimeRateRepository) FindAll(ctx context.Context) ([]models.TimeRate, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	rates := []models.TimeRate{}
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *MongoTimeRateRepository) Update(ctx context.Context, id string, rate models.TimeRate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	rate.ID = oid
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, rate)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTimeRateRepository) Delete(ctx context.Context, id string) error {
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

// MongoDailyRateRepository implements DailyRateRepository for MongoDB.
type MongoDailyRateRepository struct {
	Collection *mongo.Collection
}

func (r *MongoDailyRateRepository) Insert(ctx context.Context, rate models.DailyRate) error {
	_, err := r.Collection.InsertOne(ctx, rate)
	return err
}

func (r *MongoDailyRateRepository) FindByID(ctx context.Context, id string) (*models.DailyRate, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var rate models.DailyRate
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rate); err != nil {
		return nil, mapFindErr(err)
	}
	return &rate, nil
}

func (r *MongoDailyRateRepository) FindByLabel(ctx context.Context, label string) (*models.DailyRate, error) {
	var rate models.DailyRate
	if err := r.Collection.FindOne(ctx, bson.M{"label": label}).Decode(&rate); err != nil {
		return nil, mapFindErr(err)
	}
	return &rate, nil
}

func (r *MongoDailyRateRepository) FindAll(ctx context.Context) ([]models.DailyRate, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	rates := []models.DailyRate{}
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *MongoDailyRateRepository) Update(ctx context.Context, id string, rate models.DailyRate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	rate.ID = oid
	// Full replace so that a removed night window is actually dropped
	// from the stored document.
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, rate)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDailyRateRepository) Delete(ctx context.Context, id string) error {
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

// MongoMonthlyRateRepository implements MonthlyRateRepository for MongoDB.
type MongoMonthlyRateRepository struct {
	Collection *mongo.Collection
}

func (r *MongoMonthlyRateRepository) Insert(ctx context.Context, rate models.MonthlyRate) error {
	_, err := r.Collection.InsertOne(ctx, rate)
	return err
}

func (r *MongoMonthlyRateRepository) FindByID(ctx context.Context, id string) (*models.MonthlyRate, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var rate models.MonthlyRate
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rate); err != nil {
		return nil, mapFindErr(err)
	}
	return &rate, nil
}

func (r *MongoMonthlyRateRepository) FindAll(ctx context.Context) ([]models.MonthlyRate, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	rates := []models.MonthlyRate{}
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *MongoMonthlyRateRepository) Update(ctx context.Context, id string, rate models.MonthlyRate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	rate.ID = oid
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, rate)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMonthlyRateRepository) Delete(ctx context.Context, id string) error {
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
