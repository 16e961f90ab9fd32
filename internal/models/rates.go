package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeRate is the pricing configuration for TIME mode: every started
// fraction of the parked duration is billed at Price, with an optional
// percentage discount on the total.
type TimeRate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Fraction    HourMinute         `bson:"fraction" json:"fraction"`
	Price       Decimal            `bson:"price" json:"price"`
	Discount    Decimal            `bson:"discount" json:"discount"` // percent, 0-100
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// FractionMinutes is the billing unit length in minutes.
func (r *TimeRate) FractionMinutes() int {
	return r.Fraction.TotalMinutes()
}

// DailyRate is the pricing configuration for DAILY mode. The night
// window is optional and owned by the rate: updating the rate without
// window data removes any existing window.
type DailyRate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Price       Decimal            `bson:"price" json:"price"`
	Label       string             `bson:"label" json:"label"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Night       *NightWindow       `bson:"night,omitempty" json:"night,omitempty"`
}

// MonthlyRate is the pricing configuration for MONTHLY mode. Monthly
// accesses never charge through the fee engine; the subscription price
// is billed out-of-band.
type MonthlyRate struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Price        Decimal            `bson:"price" json:"price"`
	PeriodMonths *int               `bson:"period_months,omitempty" json:"period_months,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}
