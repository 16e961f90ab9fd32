package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingMode selects which pricing configuration applies to an access.
type BillingMode string

const (
	ModeTime    BillingMode = "TIME"
	ModeDaily   BillingMode = "DAILY"
	ModeMonthly BillingMode = "MONTHLY"
)

// IsValidBillingMode checks if a billing mode is one of the three known modes.
func IsValidBillingMode(m BillingMode) bool {
	switch m {
	case ModeTime, ModeDaily, ModeMonthly:
		return true
	default:
		return false
	}
}

// AccessStatus describes the lifecycle state of an access.
type AccessStatus string

const (
	AccessOpen   AccessStatus = "open"   // exit absent, no fee yet
	AccessClosed AccessStatus = "closed" // exit recorded, fee computed
)

// Access represents one parked-vehicle session from entry to exit.
// The billing mode tags which rate collection RateID refers to, so an
// access can never carry more than one pricing reference.
type Access struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Ticket    string             `bson:"ticket" json:"ticket"`
	LotID     primitive.ObjectID `bson:"lot_id" json:"lot_id"`
	VehicleID primitive.ObjectID `bson:"vehicle_id" json:"vehicle_id"`
	Plate     string             `bson:"plate" json:"plate"`
	Entry     time.Time          `bson:"entry" json:"entry"`
	Exit      *time.Time         `bson:"exit,omitempty" json:"exit,omitempty"`
	Mode      BillingMode        `bson:"mode" json:"mode"`
	RateID    primitive.ObjectID `bson:"rate_id" json:"rate_id"`
	Amount    Decimal            `bson:"amount" json:"amount"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Status derives the lifecycle state from the exit timestamp.
func (a *Access) Status() AccessStatus {
	if a.Exit == nil {
		return AccessOpen
	}
	return AccessClosed
}

// ElapsedMinutes returns the whole minutes between entry and exit,
// truncated. Returns 0 when no exit is recorded.
func (a *Access) ElapsedMinutes() int64 {
	if a.Exit == nil {
		return 0
	}
	return int64(a.Exit.Sub(a.Entry) / time.Minute)
}
