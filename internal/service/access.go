package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uparkdev/parking-backend/internal/billing"
	"github.com/uparkdev/parking-backend/internal/db"
	"github.com/uparkdev/parking-backend/internal/models"
)

// AccessInput is the caller-supplied payload for creating or updating
// an access. The billing mode selects which rate collection RateID
// refers to.
type AccessInput struct {
	LotID  string             `json:"lot_id"`
	Plate  string             `json:"plate"`
	Entry  time.Time          `json:"entry"`
	Exit   *time.Time         `json:"exit,omitempty"`
	Mode   models.BillingMode `json:"mode"`
	RateID string             `json:"rate_id"`
}

// AccessService validates and persists access records, resolves the
// mode-specific pricing configuration and delegates fee computation to
// the billing calculator.
type AccessService struct {
	accesses     db.AccessRepository
	lots         db.LotRepository
	vehicles     db.VehicleRepository
	timeRates    db.TimeRateRepository
	dailyRates   db.DailyRateRepository
	monthlyRates db.MonthlyRateRepository
}

// NewAccessService creates a new access lifecycle service.
func NewAccessService(
	accesses db.AccessRepository,
	lots db.LotRepository,
	vehicles db.VehicleRepository,
	timeRates db.TimeRateRepository,
	dailyRates db.DailyRateRepository,
	monthlyRates db.MonthlyRateRepository,
) *AccessService {
	return &AccessService{
		accesses:     accesses,
		lots:         lots,
		vehicles:     vehicles,
		timeRates:    timeRates,
		dailyRates:   dailyRates,
		monthlyRates: monthlyRates,
	}
}

// Create validates the input, resolves all references, computes the fee
// when an exit timestamp is present and persists the access. No write
// happens until every validation has passed.
func (s *AccessService) Create(ctx context.Context, in AccessInput) (*models.Access, error) {
	access, cfg, err := s.buildAccess(ctx, in)
	if err != nil {
		return nil, err
	}

	amount, err := billing.Calculate(access, cfg)
	if err != nil {
		return nil, err
	}
	access.Amount = amount

	now := time.Now()
	access.ID = primitive.NewObjectID()
	access.Ticket = uuid.NewString()
	access.CreatedAt = now
	access.UpdatedAt = now

	if err := s.accesses.Insert(ctx, *access); err != nil {
		return nil, err
	}
	return access, nil
}

// Update re-validates against an existing record and fully replaces
// entry, exit, billing mode and pricing reference. The fee is
// recomputed when an exit is present, and cleared to zero otherwise.
func (s *AccessService) Update(ctx context.Context, id string, in AccessInput) (*models.Access, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	access, cfg, err := s.buildAccess(ctx, in)
	if err != nil {
		return nil, err
	}

	amount, err := billing.Calculate(access, cfg)
	if err != nil {
		return nil, err
	}
	access.Amount = amount

	access.ID = existing.ID
	access.Ticket = existing.Ticket
	access.CreatedAt = existing.CreatedAt
	access.UpdatedAt = time.Now()

	if err := s.accesses.Update(ctx, id, *access); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return access, nil
}

// Get returns an access by id.
func (s *AccessService) Get(ctx context.Context, id string) (*models.Access, error) {
	access, err := s.accesses.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return access, nil
}

// List returns all accesses.
func (s *AccessService) List(ctx context.Context) ([]models.Access, error) {
	return s.accesses.FindAll(ctx)
}

// Delete removes an access. Accesses are leaf records; no other entity
// is touched.
func (s *AccessService) Delete(ctx context.Context, id string) error {
	if _, err := s.accesses.FindByID(ctx, id); err != nil {
		return mapRepoErr(err, id)
	}
	return s.accesses.Delete(ctx, id)
}

// CloseByPlate records the exit of the open session for a plate and
// computes its fee. Used by the gate listener.
func (s *AccessService) CloseByPlate(ctx context.Context, plate string, at time.Time) (*models.Access, error) {
	plate = normalizePlate(plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: plate", ErrMissingField)
	}

	access, err := s.accesses.FindOpenByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: no open access for plate %s", ErrNotFound, plate)
		}
		return nil, err
	}
	if at.Before(access.Entry) {
		return nil, fmt.Errorf("%w: exit before entry", ErrInvalidArgument)
	}

	access.Exit = &at
	cfg, err := s.resolveRate(ctx, access.Mode, access.RateID.Hex())
	if err != nil {
		return nil, err
	}

	amount, err := billing.Calculate(access, cfg)
	if err != nil {
		return nil, err
	}
	access.Amount = amount
	access.UpdatedAt = time.Now()

	if err := s.accesses.Update(ctx, access.ID.Hex(), *access); err != nil {
		return nil, err
	}
	return access, nil
}

// buildAccess runs the full validation pipeline: required fields, lot
// resolution, vehicle auto-creation, billing mode check and rate
// resolution. Returns the unsaved access and its resolved pricing
// configuration.
func (s *AccessService) buildAccess(ctx context.Context, in AccessInput) (*models.Access, billing.Config, error) {
	var cfg billing.Config

	if strings.TrimSpace(in.LotID) == "" {
		return nil, cfg, fmt.Errorf("%w: lot_id", ErrMissingField)
	}
	plate := normalizePlate(in.Plate)
	if plate == "" {
		return nil, cfg, fmt.Errorf("%w: plate", ErrMissingField)
	}
	if in.Entry.IsZero() {
		return nil, cfg, fmt.Errorf("%w: entry", ErrMissingField)
	}
	if in.Mode == "" {
		return nil, cfg, fmt.Errorf("%w: mode", ErrMissingField)
	}
	if !models.IsValidBillingMode(in.Mode) {
		return nil, cfg, fmt.Errorf("%w: billing mode %q", ErrInvalidArgument, in.Mode)
	}
	if in.Exit != nil && in.Exit.Before(in.Entry) {
		return nil, cfg, fmt.Errorf("%w: exit before entry", ErrInvalidArgument)
	}

	lot, err := s.lots.FindByID(ctx, in.LotID)
	if err != nil {
		return nil, cfg, mapRepoErr(err, in.LotID)
	}

	vehicle, err := s.resolveVehicle(ctx, plate)
	if err != nil {
		return nil, cfg, err
	}

	cfg, err = s.resolveRate(ctx, in.Mode, in.RateID)
	if err != nil {
		return nil, cfg, err
	}

	rateID, err := primitive.ObjectIDFromHex(in.RateID)
	if err != nil {
		// resolveRate already vetted the id
		return nil, cfg, fmt.Errorf("%w: rate id %q", ErrNotFound, in.RateID)
	}

	return &models.Access{
		LotID:     lot.ID,
		VehicleID: vehicle.ID,
		Plate:     plate,
		Entry:     in.Entry,
		Exit:      in.Exit,
		Mode:      in.Mode,
		RateID:    rateID,
	}, cfg, nil
}

// resolveVehicle finds a vehicle by plate, auto-creating the row on
// first sight.
func (s *AccessService) resolveVehicle(ctx context.Context, plate string) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindByPlate(ctx, plate)
	if err == nil {
		return vehicle, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	created := models.Vehicle{
		ID:        primitive.NewObjectID(),
		Plate:     plate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.vehicles.Insert(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

// resolveRate loads the pricing configuration for the given mode.
func (s *AccessService) resolveRate(ctx context.Context, mode models.BillingMode, rateID string) (billing.Config, error) {
	var cfg billing.Config
	if strings.TrimSpace(rateID) == "" {
		return cfg, fmt.Errorf("%w: rate_id for mode %s", ErrMissingField, mode)
	}

	switch mode {
	case models.ModeTime:
		rate, err := s.timeRates.FindByID(ctx, rateID)
		if err != nil {
			return cfg, mapRepoErr(err, rateID)
		}
		cfg.Time = rate
	case models.ModeDaily:
		rate, err := s.dailyRates.FindByID(ctx, rateID)
		if err != nil {
			return cfg, mapRepoErr(err, rateID)
		}
		cfg.Daily = rate
	case models.ModeMonthly:
		rate, err := s.monthlyRates.FindByID(ctx, rateID)
		if err != nil {
			return cfg, mapRepoErr(err, rateID)
		}
		cfg.Monthly = rate
	default:
		return cfg, fmt.Errorf("%w: billing mode %q", ErrInvalidArgument, mode)
	}
	return cfg, nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
