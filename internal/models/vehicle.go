package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is identified by its plate. Unknown plates are auto-created
// the first time they enter a lot.
type Vehicle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Plate     string             `bson:"plate" json:"plate"`
	Make      string             `bson:"make,omitempty" json:"make,omitempty"`
	Model     string             `bson:"model,omitempty" json:"model,omitempty"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
