package update_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/internal/slots"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// UseCase applies owner slot edits: blocking slots for maintenance,
// reopening them, or repricing. Edits address slots by their exact
// (date, startTime) key; nothing outside the named set is touched.
type UseCase struct {
	fieldRepo   FieldRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the slot editing use case
func NewUseCase(
	fieldRepo FieldRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldRepo:   fieldRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute edits the named slots. Reopening is refused while an active
// booking still holds any of them, so an owner cannot silently double-sell
// a booked hour.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAvailability: user=%d, field=%d, date=%s, slots=%d, available=%t",
		req.UserID, req.FieldID, req.Date, len(req.StartTimes), req.Available)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the field and check ownership
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("UpdateAvailability: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("UpdateAvailability: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	if field.OwnerID != req.UserID {
		uc.logger.Warn("UpdateAvailability: user=%d does not own field id=%d", req.UserID, req.FieldID)
		return nil, ErrAccessDenied
	}

	var updated int64

	// 3. Edit inside one transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Reopening a slot that an active booking holds would allow the
		// hour to be sold twice
		if req.Available {
			if err := uc.checkHeldSlots(txCtx, req); err != nil {
				return err
			}
		}

		// 3.2. Apply the edit to the named slots only
		affected, err := uc.fieldRepo.UpdateSlots(txCtx, req.FieldID, req.Date, req.StartTimes, req.Available, req.Price)
		if err != nil {
			uc.logger.Error("UpdateAvailability: failed to update slots for field=%d: %v", req.FieldID, err)
			return fmt.Errorf("%w: failed to update slots: %v", ErrInternal, err)
		}

		updated = affected
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAvailability: field=%d date=%s: %d slots updated", req.FieldID, req.Date, updated)

	return &Response{
		FieldID: req.FieldID,
		Date:    req.Date,
		Updated: updated,
	}, nil
}

// checkHeldSlots rejects the edit when any named slot lies inside the window
// of an active booking on the same date.
func (uc *UseCase) checkHeldSlots(ctx context.Context, req *Request) error {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := uc.bookingRepo.GetByFieldWithFilter(ctx, domain.FieldBookingsFilter{
		FieldID:   req.FieldID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("UpdateAvailability: failed to list bookings for field=%d: %v", req.FieldID, err)
		return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	requested := make(map[types.TimeString]struct{}, len(req.StartTimes))
	for _, start := range req.StartTimes {
		requested[start] = struct{}{}
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		held, err := slots.DecomposeWindow(booking.StartTime, booking.EndTime)
		if err != nil {
			uc.logger.Error("UpdateAvailability: stored window of booking id=%d is malformed: %v", booking.ID, err)
			continue
		}
		for _, start := range held {
			if _, ok := requested[start]; ok {
				uc.logger.Warn("UpdateAvailability: slot %s %s is held by booking id=%d", req.Date, start, booking.ID)
				return fmt.Errorf("%w: slot %s %s is held by booking %d", ErrSlotHeldByBooking, req.Date, start, booking.ID)
			}
		}
	}

	return nil
}
