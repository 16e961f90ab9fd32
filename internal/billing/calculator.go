package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/uparkdev/parking-backend/internal/models"
)

var (
	// ErrInvalidAccessState marks a calculation precondition that
	// validation should have already rejected: negative duration,
	// zero-length billing fraction, or a missing rate configuration.
	ErrInvalidAccessState = errors.New("invalid access state")

	// ErrInvalidBillingMode marks an access whose billing mode is not
	// one of the known modes.
	ErrInvalidBillingMode = errors.New("invalid billing mode")
)

// Config carries the resolved pricing configuration for an access.
// Exactly one field matching the access billing mode must be set.
type Config struct {
	Time    *models.TimeRate
	Daily   *models.DailyRate
	Monthly *models.MonthlyRate
}

var oneHundred = decimal.NewFromInt(100)

// Calculate computes the charged amount for an access, rounded to two
// decimal places, half-up. An access without an exit timestamp charges
// zero and is not an error.
func Calculate(access *models.Access, cfg Config) (models.Decimal, error) {
	if access.Exit == nil {
		return models.ZeroMoney(), nil
	}

	minutes := access.ElapsedMinutes()
	if minutes < 0 {
		return models.Decimal{}, fmt.Errorf("%w: exit before entry", ErrInvalidAccessState)
	}

	switch access.Mode {
	case models.ModeTime:
		if cfg.Time == nil {
			return models.Decimal{}, fmt.Errorf("%w: time rate missing", ErrInvalidAccessState)
		}
		return calculateTime(minutes, cfg.Time)
	case models.ModeDaily:
		if cfg.Daily == nil {
			return models.Decimal{}, fmt.Errorf("%w: daily rate missing", ErrInvalidAccessState)
		}
		return calculateDaily(models.HourMinuteOf(*access.Exit), cfg.Daily), nil
	case models.ModeMonthly:
		if cfg.Monthly == nil {
			return models.Decimal{}, fmt.Errorf("%w: monthly rate missing", ErrInvalidAccessState)
		}
		return models.ZeroMoney(), nil
	default:
		return models.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidBillingMode, access.Mode)
	}
}

// calculateTime bills every started fraction of the parked duration.
// Zero elapsed minutes bill zero fractions.
func calculateTime(minutes int64, rate *models.TimeRate) (models.Decimal, error) {
	fraction := int64(rate.FractionMinutes())
	if fraction <= 0 {
		return models.Decimal{}, fmt.Errorf("%w: zero-length billing fraction", ErrInvalidAccessState)
	}

	fractions := minutes / fraction
	if minutes%fraction != 0 {
		fractions++
	}

	amount := decimal.NewFromInt(fractions).Mul(rate.Price.Decimal)
	if rate.Discount.Decimal.IsPositive() {
		discount := amount.Mul(rate.Discount.Decimal.Div(oneHundred))
		amount = amount.Sub(discount)
	}
	return models.RoundMoney(amount), nil
}

// calculateDaily charges the base daily price, plus the night surcharge
// when the exit time of day falls inside the configured window. Only
// the exit instant is tested, not the whole parked interval.
func calculateDaily(exit models.HourMinute, rate *models.DailyRate) models.Decimal {
	amount := rate.Price.Decimal
	if rate.Night != nil && rate.Night.Contains(exit) {
		amount = amount.Add(rate.Night.Surcharge.Decimal)
	}
	return models.RoundMoney(amount)
}
