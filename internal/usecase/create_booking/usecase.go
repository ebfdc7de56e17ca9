package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/internal/slots"
	"github.com/Long0701/PitchSpot-BookingService/pkg/txmanager"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// UseCase creates bookings: it validates the request, checks that every
// hourly slot of the window is available, and consumes the slots and writes
// the booking as one transaction.
type UseCase struct {
	fieldRepo    FieldRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking creation use case
func NewUseCase(
	fieldRepo FieldRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldRepo:    fieldRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the booking creation pipeline. The availability check and the
// slot mutation happen inside one serializable transaction with the day's
// slot rows locked, and the slot update is additionally conditional on the
// slots still being available; a concurrent booking that wins the race
// surfaces as ErrSlotConflict, never as a double-booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, field=%d, date=%s, window=%s-%s",
		req.UserID, req.FieldID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Load the field
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("CreateBooking: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CreateBooking: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	if !field.IsActive {
		uc.logger.Warn("CreateBooking: field id=%d is inactive", req.FieldID)
		return nil, ErrFieldInactive
	}

	date := req.Date.Format(domain.DateFormat)
	var result *domain.Booking

	// 3. Allocate inside one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Read the day's slots with the rows locked
		slotSet, err := uc.fieldRepo.GetSlotsByDate(txCtx, req.FieldID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slots for field=%d date=%s: %v", req.FieldID, date, err)
			return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}

		// 3.2. Every hourly slot of the window must exist and be available
		match, err := slots.FindContiguousAvailable(slotSet, date, req.StartTime, req.EndTime)
		if err != nil {
			if errors.Is(err, slots.ErrSlotUnavailable) {
				uc.logger.Warn("CreateBooking: window unavailable for field=%d: %v", req.FieldID, err)
				return fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
			}
			uc.logger.Warn("CreateBooking: invalid window for field=%d: %v", req.FieldID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		uc.logger.Info("CreateBooking: window available for field=%d, slots=%d, totalCost=%d",
			req.FieldID, len(match.Slots), match.TotalCost)

		// 3.3. Write the booking. Creation is confirmation: there is no
		// separate owner approval step.
		booking := &domain.Booking{
			UserID:        req.UserID,
			FieldID:       req.FieldID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			DurationHours: len(match.Slots),
			TotalCost:     match.TotalCost,
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentPending,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.4. Consume the slots. The update requires each slot to still be
		// available; a shortfall means another transaction got there first.
		startTimes := startTimesOf(match)
		affected, err := uc.fieldRepo.MarkSlotsUnavailable(txCtx, req.FieldID, date, startTimes)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to mark slots unavailable: %v", err)
			return fmt.Errorf("%w: failed to mark slots unavailable: %v", ErrInternal, err)
		}
		if affected != int64(len(startTimes)) {
			uc.logger.Warn("CreateBooking: slot conflict for field=%d date=%s: %d/%d slots updated",
				req.FieldID, date, affected, len(startTimes))
			return ErrSlotConflict
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization conflict for field=%d date=%s", req.FieldID, date)
			return nil, fmt.Errorf("%w: %v", ErrSlotConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, totalCost=%d, duration=%dh",
		result.ID, result.TotalCost, result.DurationHours)

	return fromDomain(result), nil
}

func startTimesOf(match *slots.Match) []types.TimeString {
	starts := make([]types.TimeString, 0, len(match.Slots))
	for _, slot := range match.Slots {
		starts = append(starts, slot.StartTime)
	}
	return starts
}
