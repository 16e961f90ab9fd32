package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contractor is a billing-relationship holder. The contractor document
// is the single representation of its lot and event associations; the
// reverse views are resolved by query, never mirrored.
type Contractor struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	TaxID     string               `bson:"tax_id" json:"tax_id"`
	Email     string               `bson:"email" json:"email"`
	Phone     string               `bson:"phone,omitempty" json:"phone,omitempty"`
	LotIDs    []primitive.ObjectID `bson:"lot_ids,omitempty" json:"lot_ids,omitempty"`
	EventIDs  []primitive.ObjectID `bson:"event_ids,omitempty" json:"event_ids,omitempty"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
}
