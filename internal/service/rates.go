package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uparkdev/parking-backend/internal/db"
	"github.com/uparkdev/parking-backend/internal/models"
)

// TimeRateService manages time-fraction pricing configurations.
type TimeRateService struct {
	rates db.TimeRateRepository
}

func NewTimeRateService(rates db.TimeRateRepository) *TimeRateService {
	return &TimeRateService{rates: rates}
}

func (s *TimeRateService) Create(ctx context.Context, rate models.TimeRate) (*models.TimeRate, error) {
	if err := validateTimeRate(&rate); err != nil {
		return nil, err
	}
	rate.ID = primitive.NewObjectID()
	if err := s.rates.Insert(ctx, rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

func (s *TimeRateService) Get(ctx context.Context, id string) (*models.TimeRate, error) {
	rate, err := s.rates.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return rate, nil
}

func (s *TimeRateService) List(ctx context.Context) ([]models.TimeRate, error) {
	return s.rates.FindAll(ctx)
}

func (s *TimeRateService) Update(ctx context.Context, id string, rate models.TimeRate) (*models.TimeRate, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTimeRate(&rate); err != nil {
		return nil, err
	}
	rate.ID = existing.ID
	if err := s.rates.Update(ctx, id, rate); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return &rate, nil
}

func (s *TimeRateService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.rates.Delete(ctx, id)
}

// validateTimeRate rejects configurations the fee engine could not
// price: zero-length fractions, non-positive prices, discounts outside
// 0-100. Prices and discounts are normalized to two decimals on save.
func validateTimeRate(rate *models.TimeRate) error {
	if rate.FractionMinutes() <= 0 {
		return fmt.Errorf("%w: fraction duration must be positive", ErrInvalidArgument)
	}
	if !rate.Price.Decimal.IsPositive() {
		return fmt.Errorf("%w: price per fraction must be greater than zero", ErrInvalidArgument)
	}
	if rate.Discount.Decimal.IsNegative() {
		return fmt.Errorf("%w: discount cannot be negative", ErrInvalidArgument)
	}
	if rate.Discount.Decimal.GreaterThan(hundred) {
		return fmt.Errorf("%w: discount cannot exceed 100", ErrInvalidArgument)
	}
	rate.Price = models.RoundMoney(rate.Price.Decimal)
	rate.Discount = models.RoundMoney(rate.Discount.Decimal)
	return nil
}

// DailyRateService manages daily pricing configurations and their
// optional night surcharge windows.
type DailyRateService struct {
	rates db.DailyRateRepository
}

func NewDailyRateService(rates db.DailyRateRepository) *DailyRateService {
	return &DailyRateService{rates: rates}
}

func (s *DailyRateService) Create(ctx context.Context, rate models.DailyRate) (*models.DailyRate, error) {
	if err := validateDailyRate(&rate); err != nil {
		return nil, err
	}
	if err := s.checkLabelUnique(ctx, rate.Label, ""); err != nil {
		return nil, err
	}
	rate.ID = primitive.NewObjectID()
	if err := s.rates.Insert(ctx, rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

func (s *DailyRateService) Get(ctx context.Context, id string) (*models.DailyRate, error) {
	rate, err := s.rates.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return rate, nil
}

func (s *DailyRateService) List(ctx context.Context) ([]models.DailyRate, error) {
	return s.rates.FindAll(ctx)
}

// Update fully replaces the configuration. Updating without night
// window data removes any existing window (orphan deletion).
func (s *DailyRateService) Update(ctx context.Context, id string, rate models.DailyRate) (*models.DailyRate, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateDailyRate(&rate); err != nil {
		return nil, err
	}
	if err := s.checkLabelUnique(ctx, rate.Label, existing.ID.Hex()); err != nil {
		return nil, err
	}
	rate.ID = existing.ID
	if err := s.rates.Update(ctx, id, rate); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return &rate, nil
}

func (s *DailyRateService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.rates.Delete(ctx, id)
}

// RemoveNightWindow deletes the surcharge window independently of the
// parent rate.
func (s *DailyRateService) RemoveNightWindow(ctx context.Context, id string) (*models.DailyRate, error) {
	rate, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rate.Night = nil
	if err := s.rates.Update(ctx, id, *rate); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return rate, nil
}

func (s *DailyRateService) checkLabelUnique(ctx context.Context, label, selfID string) error {
	found, err := s.rates.FindByLabel(ctx, label)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return err
	}
	if found.ID.Hex() != selfID {
		return fmt.Errorf("%w: daily rate %q already exists", ErrInvalidArgument, label)
	}
	return nil
}

func validateDailyRate(rate *models.DailyRate) error {
	if !rate.Price.Decimal.IsPositive() {
		return fmt.Errorf("%w: daily price must be greater than zero", ErrInvalidArgument)
	}
	if strings.TrimSpace(rate.Label) == "" {
		return fmt.Errorf("%w: label", ErrMissingField)
	}
	if rate.Night != nil {
		if rate.Night.Surcharge.Decimal.IsNegative() {
			return fmt.Errorf("%w: night surcharge cannot be negative", ErrInvalidArgument)
		}
		rate.Night.Surcharge = models.RoundMoney(rate.Night.Surcharge.Decimal)
	}
	rate.Price = models.RoundMoney(rate.Price.Decimal)
	return nil
}

// MonthlyRateService manages monthly subscription configurations.
type MonthlyRateService struct {
	rates db.MonthlyRateRepository
}

func NewMonthlyRateService(rates db.MonthlyRateRepository) *MonthlyRateService {
	return &MonthlyRateService{rates: rates}
}

func (s *MonthlyRateService) Create(ctx context.Context, rate models.MonthlyRate) (*models.MonthlyRate, error) {
	if err := validateMonthlyRate(&rate); err != nil {
		return nil, err
	}
	rate.ID = primitive.NewObjectID()
	if err := s.rates.Insert(ctx, rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

func (s *MonthlyRateService) Get(ctx context.Context, id string) (*models.MonthlyRate, error) {
	rate, err := s.rates.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return rate, nil
}

func (s *MonthlyRateService) List(ctx context.Context) ([]models.MonthlyRate, error) {
	return s.rates.FindAll(ctx)
}

func (s *MonthlyRateService) Update(ctx context.Context, id string, rate models.MonthlyRate) (*models.MonthlyRate, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateMonthlyRate(&rate); err != nil {
		return nil, err
	}
	rate.ID = existing.ID
	if err := s.rates.Update(ctx, id, rate); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return &rate, nil
}

func (s *MonthlyRateService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.rates.Delete(ctx, id)
}

func validateMonthlyRate(rate *models.MonthlyRate) error {
	if !rate.Price.Decimal.IsPositive() {
		return fmt.Errorf("%w: monthly price must be greater than zero", ErrInvalidArgument)
	}
	if rate.PeriodMonths != nil && *rate.PeriodMonths <= 0 {
		return fmt.Errorf("%w: period months must be greater than zero", ErrInvalidArgument)
	}
	rate.Price = models.RoundMoney(rate.Price.Decimal)
	return nil
}

var hundred = models.MustDecimal("100").Decimal

func mapRepoErr(err error, id string) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	return err
}
