package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	bookingRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/booking"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/internal/slots"
)

// UseCase cancels bookings and releases the consumed slots back to the
// field's availability in the same transaction.
type UseCase struct {
	bookingRepo BookingRepository
	fieldRepo   FieldRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the booking cancellation use case
func NewUseCase(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		fieldRepo:   fieldRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute cancels the booking. Allowed callers are the booking's author and
// the owner of the booked field. The status change and the slot release are
// one transaction, so a cancelled booking never leaves its slots consumed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d, role=%s", req.BookingID, req.UserID, req.Role)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Cancel and release inside one transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.1. Caller must be the author or the field's owner
		if err := uc.checkAccess(txCtx, req, booking); err != nil {
			return err
		}

		// 2.2. Only active bookings can be cancelled
		if booking.IsCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", req.BookingID)
			return ErrAlreadyCancelled
		}
		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d in status %q cannot be cancelled", req.BookingID, booking.Status)
			return ErrNotCancellable
		}

		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}

		// 2.3. Flip the booking
		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID, reason); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// 2.4. Release the slots the booking consumed
		starts, err := slots.DecomposeWindow(booking.StartTime, booking.EndTime)
		if err != nil {
			uc.logger.Error("CancelBooking: stored window of booking id=%d is malformed: %v", req.BookingID, err)
			return fmt.Errorf("%w: malformed booking window: %v", ErrInternal, err)
		}

		date := booking.BookingDate.Format(domain.DateFormat)
		affected, err := uc.fieldRepo.MarkSlotsAvailable(txCtx, booking.FieldID, date, starts)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to release slots for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to release slots: %v", ErrInternal, err)
		}
		if affected != int64(len(starts)) {
			// A slot may have been reopened by the owner already; the
			// cancellation itself still stands.
			uc.logger.Warn("CancelBooking: released %d/%d slots for booking id=%d", affected, len(starts), req.BookingID)
		}

		// 2.5. Re-read so the response carries the stored cancellation data
		cancelled, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to reload booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = cancelled
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d", result.ID)

	return fromDomain(result), nil
}

// checkAccess allows the booking's author, and the booked field's owner when
// the caller has the owner role.
func (uc *UseCase) checkAccess(ctx context.Context, req *Request, booking *domain.Booking) error {
	if booking.UserID == req.UserID {
		return nil
	}

	if req.Role == domain.RoleOwner {
		field, err := uc.fieldRepo.GetByID(ctx, booking.FieldID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				uc.logger.Error("CancelBooking: field id=%d of booking id=%d not found", booking.FieldID, booking.ID)
				return ErrAccessDenied
			}
			uc.logger.Error("CancelBooking: failed to get field id=%d: %v", booking.FieldID, err)
			return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}
		if field.OwnerID == req.UserID {
			return nil
		}
	}

	uc.logger.Warn("CancelBooking: user=%d denied for booking id=%d", req.UserID, booking.ID)
	return ErrAccessDenied
}
