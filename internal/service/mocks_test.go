package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uparkdev/parking-backend/internal/models"
)

// MockAccessRepository is a mock implementation of db.AccessRepository
type MockAccessRepository struct {
	mock.Mock
}

func (m *MockAccessRepository) Insert(ctx context.Context, access models.Access) error {
	args := m.Called(ctx, access)
	return args.Error(0)
}

func (m *MockAccessRepository) FindByID(ctx context.Context, id string) (*models.Access, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Access), args.Error(1)
}

func (m *MockAccessRepository) FindAll(ctx context.Context) ([]models.Access, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Access), args.Error(1)
}

func (m *MockAccessRepository) FindOpenByPlate(ctx context.Context, plate string) (*models.Access, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Access), args.Error(1)
}

func (m *MockAccessRepository) Update(ctx context.Context, id string, access models.Access) error {
	args := m.Called(ctx, id, access)
	return args.Error(0)
}

func (m *MockAccessRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLotRepository is a mock implementation of db.LotRepository
type MockLotRepository struct {
	mock.Mock
}

func (m *MockLotRepository) Insert(ctx context.Context, lot models.Lot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) FindByID(ctx context.Context, id string) (*models.Lot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lot), args.Error(1)
}

func (m *MockLotRepository) FindAll(ctx context.Context) ([]models.Lot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lot), args.Error(1)
}

func (m *MockLotRepository) Update(ctx context.Context, id string, lot models.Lot) error {
	args := m.Called(ctx, id, lot)
	return args.Error(0)
}

func (m *MockLotRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of db.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Insert(ctx context.Context, vehicle models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAll(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, id string, vehicle models.Vehicle) error {
	args := m.Called(ctx, id, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTimeRateRepository is a mock implementation of db.TimeRateRepository
type MockTimeRateRepository struct {
	mock.Mock
}

func (m *MockTimeRateRepository) Insert(ctx context.Context, rate models.TimeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockTimeRateRepository) FindByID(ctx context.Context, id string) (*models.TimeRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimeRate), args.Error(1)
}

func (m *MockTimeRateRepository) FindAll(ctx context.Context) ([]models.TimeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimeRate), args.Error(1)
}

func (m *MockTimeRateRepository) Update(ctx context.Context, id string, rate models.TimeRate) error {
	args := m.Called(ctx, id, rate)
	return args.Error(0)
}

func (m *MockTimeRateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDailyRateRepository is a mock implementation of db.DailyRateRepository
type MockDailyRateRepository struct {
	mock.Mock
}

func (m *MockDailyRateRepository) Insert(ctx context.Context, rate models.DailyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockDailyRateRepository) FindByID(ctx context.Context, id string) (*models.DailyRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyRate), args.Error(1)
}

func (m *MockDailyRateRepository) FindByLabel(ctx context.Context, label string) (*models.DailyRate, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyRate), args.Error(1)
}

func (m *MockDailyRateRepository) FindAll(ctx context.Context) ([]models.DailyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyRate), args.Error(1)
}

func (m *MockDailyRateRepository) Update(ctx context.Context, id string, rate models.DailyRate) error {
	args := m.Called(ctx, id, rate)
	return args.Error(0)
}

func (m *MockDailyRateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMonthlyRateRepository is a mock implementation of db.MonthlyRateRepository
type MockMonthlyRateRepository struct {
	mock.Mock
}

func (m *MockMonthlyRateRepository) Insert(ctx context.Context, rate models.MonthlyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockMonthlyRateRepository) FindByID(ctx context.Context, id string) (*models.MonthlyRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MonthlyRate), args.Error(1)
}

func (m *MockMonthlyRateRepository) FindAll(ctx context.Context) ([]models.MonthlyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MonthlyRate), args.Error(1)
}

func (m *MockMonthlyRateRepository) Update(ctx context.Context, id string, rate models.MonthlyRate) error {
	args := m.Called(ctx, id, rate)
	return args.Error(0)
}

func (m *MockMonthlyRateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContractorRepository is a mock implementation of db.ContractorRepository
type MockContractorRepository struct {
	mock.Mock
}

func (m *MockContractorRepository) Insert(ctx context.Context, contractor models.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

func (m *MockContractorRepository) FindByID(ctx context.Context, id string) (*models.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindByTaxID(ctx context.Context, taxID string) (*models.Contractor, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindByEmail(ctx context.Context, email string) (*models.Contractor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindByLot(ctx context.Context, lotID primitive.ObjectID) ([]models.Contractor, error) {
	args := m.Called(ctx, lotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Contractor, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindAll(ctx context.Context) ([]models.Contractor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contractor), args.Error(1)
}

func (m *MockContractorRepository) Update(ctx context.Context, id string, contractor models.Contractor) error {
	args := m.Called(ctx, id, contractor)
	return args.Error(0)
}

func (m *MockContractorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of db.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Insert(ctx context.Context, event models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, id string, event models.Event) error {
	args := m.Called(ctx, id, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
