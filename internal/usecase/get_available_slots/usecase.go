package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
)

// UseCase serves a field's slot schedule for one date
type UseCase struct {
	fieldRepo FieldRepository
	logger    Logger
}

// NewUseCase creates the slot listing use case
func NewUseCase(fieldRepo FieldRepository, logger Logger) *UseCase {
	return &UseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// Execute returns the field's slots for the requested date. An inactive
// field advertises no availability.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: field=%d, date=%s", req.FieldID, req.Date)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the field
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	if !field.IsActive {
		uc.logger.Warn("GetAvailableSlots: field id=%d is inactive", req.FieldID)
		return nil, ErrFieldInactive
	}

	// 3. Load the day's slots. A date outside the generated horizon simply
	// has no rows and yields an empty schedule.
	slotSet, err := uc.fieldRepo.GetSlotsByDate(ctx, req.FieldID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots for field=%d date=%s: %v", req.FieldID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: field=%d date=%s has %d slots", req.FieldID, req.Date, len(slotSet))

	return fromDomain(req.FieldID, req.Date, field.Pricing.Currency, slotSet, req.OnlyAvailable), nil
}

func validateRequest(req *Request) error {
	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return nil
}
