package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Decimal wraps a fixed-point decimal value so that money amounts and
// percentages survive the JSON and BSON round trip as plain decimal
// strings instead of binary floats.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal parses a decimal string such as "12.50".
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return Decimal{d}, nil
}

// MustDecimal is NewDecimal for literals in tests and fixtures.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFrom wraps an existing decimal value.
func DecimalFrom(d decimal.Decimal) Decimal {
	return Decimal{d}
}

// RoundMoney finalizes an amount at two decimal places, half-up. Every
// charged amount goes through this helper before it is stored or
// returned.
func RoundMoney(d decimal.Decimal) Decimal {
	return Decimal{d.Round(2)}
}

// ZeroMoney is the charged amount of an access with no exit recorded.
func ZeroMoney() Decimal {
	return RoundMoney(decimal.Zero)
}

func (d Decimal) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

func (d *Decimal) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	var s string
	if err := rv.Unmarshal(&s); err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	if s == "" {
		d.Decimal = decimal.Zero
		return nil
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	d.Decimal = parsed
	return nil
}
