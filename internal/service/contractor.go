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

// ContractorInput is the payload for creating or updating a contractor.
// Lot and event associations are supplied as id lists and validated
// against the referenced collections.
type ContractorInput struct {
	Name     string   `json:"name"`
	TaxID    string   `json:"tax_id"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	LotIDs   []string `json:"lot_ids,omitempty"`
	EventIDs []string `json:"event_ids,omitempty"`
}

// ContractorService manages contractors and their lot/event
// associations. The contractor document is the single join
// representation: associations are written once here and the reverse
// views are resolved by query, so a failed update can never leave the
// two sides out of sync.
type ContractorService struct {
	contractors db.ContractorRepository
	lots        db.LotRepository
	events      db.EventRepository
}

func NewContractorService(contractors db.ContractorRepository, lots db.LotRepository, events db.EventRepository) *ContractorService {
	return &ContractorService{contractors: contractors, lots: lots, events: events}
}

func (s *ContractorService) Create(ctx context.Context, in ContractorInput) (*models.Contractor, error) {
	contractor, err := s.buildContractor(ctx, in, "")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	contractor.ID = primitive.NewObjectID()
	contractor.CreatedAt = now
	contractor.UpdatedAt = now
	if err := s.contractors.Insert(ctx, *contractor); err != nil {
		return nil, err
	}
	return contractor, nil
}

func (s *ContractorService) Get(ctx context.Context, id string) (*models.Contractor, error) {
	contractor, err := s.contractors.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return contractor, nil
}

func (s *ContractorService) List(ctx context.Context) ([]models.Contractor, error) {
	return s.contractors.FindAll(ctx)
}

// ListByLot returns the contractors associated with a lot (the reverse
// view of the association).
func (s *ContractorService) ListByLot(ctx context.Context, lotID string) ([]models.Contractor, error) {
	lot, err := s.lots.FindByID(ctx, lotID)
	if err != nil {
		return nil, mapRepoErr(err, lotID)
	}
	return s.contractors.FindByLot(ctx, lot.ID)
}

// ListByEvent returns the contractors associated with an event.
func (s *ContractorService) ListByEvent(ctx context.Context, eventID string) ([]models.Contractor, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, mapRepoErr(err, eventID)
	}
	return s.contractors.FindByEvent(ctx, event.ID)
}

func (s *ContractorService) Update(ctx context.Context, id string, in ContractorInput) (*models.Contractor, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	contractor, err := s.buildContractor(ctx, in, existing.ID.Hex())
	if err != nil {
		return nil, err
	}
	contractor.ID = existing.ID
	contractor.CreatedAt = existing.CreatedAt
	contractor.UpdatedAt = time.Now()
	if err := s.contractors.Update(ctx, id, *contractor); err != nil {
		return nil, mapRepoErr(err, id)
	}
	return contractor, nil
}

// Delete removes a contractor. Associations live only on the
// contractor document, so nothing else needs cleanup.
func (s *ContractorService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.contractors.Delete(ctx, id)
}

// buildContractor validates fields, uniqueness and both association
// sides, and assembles the document in one place.
func (s *ContractorService) buildContractor(ctx context.Context, in ContractorInput, selfID string) (*models.Contractor, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(in.TaxID) == "" {
		return nil, fmt.Errorf("%w: tax_id", ErrMissingField)
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}

	if err := s.checkUnique(ctx, in, selfID); err != nil {
		return nil, err
	}

	lotIDs, err := s.resolveLots(ctx, in.LotIDs)
	if err != nil {
		return nil, err
	}
	eventIDs, err := s.resolveEvents(ctx, in.EventIDs)
	if err != nil {
		return nil, err
	}

	return &models.Contractor{
		Name:     strings.TrimSpace(in.Name),
		TaxID:    strings.TrimSpace(in.TaxID),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		LotIDs:   lotIDs,
		EventIDs: eventIDs,
	}, nil
}

func (s *ContractorService) checkUnique(ctx context.Context, in ContractorInput, selfID string) error {
	if found, err := s.contractors.FindByTaxID(ctx, strings.TrimSpace(in.TaxID)); err == nil {
		if found.ID.Hex() != selfID {
			return fmt.Errorf("%w: contractor with tax id %s already exists", ErrInvalidArgument, in.TaxID)
		}
	} else if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	if found, err := s.contractors.FindByEmail(ctx, strings.TrimSpace(in.Email)); err == nil {
		if found.ID.Hex() != selfID {
			return fmt.Errorf("%w: contractor with email %s already exists", ErrInvalidArgument, in.Email)
		}
	} else if !errors.Is(err, db.ErrNotFound) {
		return err
	}
	return nil
}

func (s *ContractorService) resolveLots(ctx context.Context, ids []string) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	resolved := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		lot, err := s.lots.FindByID(ctx, id)
		if err != nil {
			return nil, mapRepoErr(err, id)
		}
		resolved = append(resolved, lot.ID)
	}
	return resolved, nil
}

func (s *ContractorService) resolveEvents(ctx context.Context, ids []string) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	resolved := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		event, err := s.events.FindByID(ctx, id)
		if err != nil {
			return nil, mapRepoErr(err, id)
		}
		resolved = append(resolved, event.ID)
	}
	return resolved, nil
}
