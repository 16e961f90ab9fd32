package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uparkdev/parking-backend/internal/models"
	"github.com/uparkdev/parking-backend/internal/service"
)

// MockAccessOpener is a mock implementation of AccessOpener
type MockAccessOpener struct {
	mock.Mock
}

func (m *MockAccessOpener) Create(ctx context.Context, in service.AccessInput) (*models.Access, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Access), args.Error(1)
}

func (m *MockAccessOpener) CloseByPlate(ctx context.Context, plate string, at time.Time) (*models.Access, error) {
	args := m.Called(ctx, plate, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Access), args.Error(1)
}

func TestListener_Handle(t *testing.T) {
	lotID := primitive.NewObjectID()
	rateID := primitive.NewObjectID()
	at := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	t.Run("entry opens an access", func(t *testing.T) {
		accesses := new(MockAccessOpener)
		listener := &Listener{accesses: accesses, timeout: time.Second}

		opened := &models.Access{
			ID:     primitive.NewObjectID(),
			Ticket: "ticket-1",
			Plate:  "ABC1234",
			Entry:  at,
			Mode:   models.ModeTime,
			Amount: models.ZeroMoney(),
		}
		accesses.On("Create", mock.Anything, service.AccessInput{
			LotID:  lotID.Hex(),
			Plate:  "ABC1234",
			Entry:  at,
			Mode:   models.ModeTime,
			RateID: rateID.Hex(),
		}).Return(opened, nil)

		err := listener.Handle(context.Background(), Event{
			LotID:  lotID.Hex(),
			Plate:  "ABC1234",
			Event:  EventEntry,
			Mode:   models.ModeTime,
			RateID: rateID.Hex(),
			At:     at,
		})

		require.NoError(t, err)
		accesses.AssertExpectations(t)
	})

	t.Run("exit closes the open access", func(t *testing.T) {
		accesses := new(MockAccessOpener)
		listener := &Listener{accesses: accesses, timeout: time.Second}

		exit := at
		closed := &models.Access{
			ID:     primitive.NewObjectID(),
			Ticket: "ticket-1",
			Plate:  "ABC1234",
			Exit:   &exit,
			Amount: models.MustDecimal("12.50"),
		}
		accesses.On("CloseByPlate", mock.Anything, "ABC1234", at).Return(closed, nil)

		err := listener.Handle(context.Background(), Event{
			LotID: lotID.Hex(),
			Plate: "ABC1234",
			Event: EventExit,
			At:    at,
		})

		require.NoError(t, err)
		accesses.AssertExpectations(t)
	})

	t.Run("zero timestamp defaults to now", func(t *testing.T) {
		accesses := new(MockAccessOpener)
		listener := &Listener{accesses: accesses, timeout: time.Second}

		before := time.Now()
		accesses.On("CloseByPlate", mock.Anything, "ABC1234", mock.MatchedBy(func(at time.Time) bool {
			return !at.Before(before)
		})).Return(&models.Access{Plate: "ABC1234", Amount: models.ZeroMoney()}, nil)

		err := listener.Handle(context.Background(), Event{
			Plate: "ABC1234",
			Event: EventExit,
		})

		require.NoError(t, err)
		accesses.AssertExpectations(t)
	})

	t.Run("unknown event type is rejected", func(t *testing.T) {
		accesses := new(MockAccessOpener)
		listener := &Listener{accesses: accesses, timeout: time.Second}

		err := listener.Handle(context.Background(), Event{
			Plate: "ABC1234",
			Event: "reboot",
			At:    at,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown gate event type")
		accesses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		accesses.AssertNotCalled(t, "CloseByPlate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("service errors propagate", func(t *testing.T) {
		accesses := new(MockAccessOpener)
		listener := &Listener{accesses: accesses, timeout: time.Second}

		accesses.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrNotFound)

		err := listener.Handle(context.Background(), Event{
			LotID: lotID.Hex(),
			Plate: "ABC1234",
			Event: EventEntry,
			At:    at,
		})

		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}
