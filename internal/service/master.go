package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uparkdev/parking-backend/internal/db"
	"github.com/uparkdev/parking-backend/internal/models"
)

// LotService manages parking lots.
type LotService struct {
	lots db.LotRepository
}

func NewLotService(lots db.LotRepository) *LotService {
	return &LotService{lots: lots}
}

func (s *LotService) Create(ctx context.Context, lot models.Lot) (*models.Lot, error) {
	if err := validateLot(&lot); err != nil {
		return nil, err
	}
	now := time.Now()
	lot.ID = primitive.NewObjectID()
	lot.CreatedAt = now
	lot.UpdatedAt = now
	if err := s.lots.Insert(ctx, lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (s *LotService) Get(ctx context.Context, id string) (*models.Lot, error) {
	lot, err := s.lots.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return lot, nil
}

func (s *LotService) List(ctx context.Context) ([]models.Lot, error) {
	return s.lots.FindAll(ctx)
}

func (s *LotService) Update(ctx context.Context, id string, lot models.Lot) (*models.Lot, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateLot(&lot); err != nil {
		return nil, err
	}
	lot.ID = existing.ID
	lot.CreatedAt = existing.CreatedAt
	lot.UpdatedAt = time.Now()
	if err := s.lots.Update(ctx, id, lot); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return &lot, nil
}

func (s *LotService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.lots.Delete(ctx, id)
}

func validateLot(lot *models.Lot) error {
	if strings.TrimSpace(lot.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(lot.Address) == "" {
		return fmt.Errorf("%w: address", ErrMissingField)
	}
	if lot.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be greater than zero", ErrInvalidArgument)
	}
	return nil
}

// VehicleService manages registered vehicles. Plates are unique;
// unknown plates entering a lot are created by the access service
// instead.
type VehicleService struct {
	vehicles db.VehicleRepository
}

func NewVehicleService(vehicles db.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func (s *VehicleService) Create(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	vehicle.Plate = normalizePlate(vehicle.Plate)
	if vehicle.Plate == "" {
		return nil, fmt.Errorf("%w: plate", ErrMissingField)
	}
	if err := s.checkPlateUnique(ctx, vehicle.Plate, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	if err := s.vehicles.Insert(ctx, vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicles.FindAll(ctx)
}

func (s *VehicleService) Update(ctx context.Context, id string, vehicle models.Vehicle) (*models.Vehicle, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle.Plate = normalizePlate(vehicle.Plate)
	if vehicle.Plate == "" {
		return nil, fmt.Errorf("%w: plate", ErrMissingField)
	}
	if err := s.checkPlateUnique(ctx, vehicle.Plate, existing.ID.Hex()); err != nil {
		return nil, err
	}
	vehicle.ID = existing.ID
	vehicle.CreatedAt = existing.CreatedAt
	vehicle.UpdatedAt = time.Now()
	if err := s.vehicles.Update(ctx, id, vehicle); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return &vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

func (s *VehicleService) checkPlateUnique(ctx context.Context, plate, selfID string) error {
	found, err := s.vehicles.FindByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return err
	}
	if found.ID.Hex() != selfID {
		return fmt.Errorf("%w: vehicle with plate %s already exists", ErrInvalidArgument, plate)
	}
	return nil
}

// EventService manages events.
type EventService struct {
	events db.EventRepository
}

func NewEventService(events db.EventRepository) *EventService {
	return &EventService{events: events}
}

func (s *EventService) Create(ctx context.Context, event models.Event) (*models.Event, error) {
	if err := validateEvent(&event); err != nil {
		return nil, err
	}
	now := time.Now()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.events.Insert(ctx, event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *EventService) Update(ctx context.Context, id string, event models.Event) (*models.Event, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateEvent(&event); err != nil {
		return nil, err
	}
	event.ID = existing.ID
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = time.Now()
	if err := s.events.Update(ctx, id, event); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return &event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}

func validateEvent(event *models.Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	return nil
}
