package fields

import (
	"context"
	"errors"
	"fmt"

	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/fields/models"
)

// Service serves the public field catalogue and owner-facing field
// management that needs no slot bookkeeping.
type Service struct {
	fieldRepo FieldRepository
	logger    Logger
}

// NewService creates the field query service
func NewService(fieldRepo FieldRepository, logger Logger) *Service {
	return &Service{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// GetByID fetches one field. Fields are public; no access check.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FieldResponse, error) {
	s.logger.Info("GetByID: fetching field id=%d", id)

	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetByID: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetByID: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainField(field), nil
}

// List fetches a page of active fields filtered by city, sport and price
func (s *Service) List(ctx context.Context, req *models.ListFieldsRequest) (*models.FieldListResponse, error) {
	filter := req.ToDomainFilter()

	s.logger.Info("List: fetching fields page=%d limit=%d", filter.Page, filter.Limit)

	fields, err := s.fieldRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.fieldRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d fields", len(fields), total)
	return models.FromDomainFieldList(fields, total, filter.Page, filter.Limit), nil
}

// Deactivate soft-deletes a field: it disappears from the catalogue and
// stops advertising availability, but its slots and bookings are retained.
// Available only to the field's owner.
func (s *Service) Deactivate(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Deactivate: field id=%d, user=%d", id, userID)

	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("Deactivate: field id=%d not found", id)
			return ErrFieldNotFound
		}
		s.logger.Error("Deactivate: repository error for field id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	if field.OwnerID != userID {
		s.logger.Warn("Deactivate: user=%d does not own field id=%d", userID, id)
		return ErrAccessDenied
	}

	if err := s.fieldRepo.SetActive(ctx, id, false); err != nil {
		s.logger.Error("Deactivate: failed to deactivate field id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: field id=%d deactivated", id)
	return nil
}
