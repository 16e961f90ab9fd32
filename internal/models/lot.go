package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lot represents a physical parking facility.
type Lot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	Capacity  int                `bson:"capacity" json:"capacity"`
	Opens     HourMinute         `bson:"opens" json:"opens"`
	Closes    HourMinute         `bson:"closes" json:"closes"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
