package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	bookingRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/booking"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/bookings/models"
)

// Service serves booking read queries: single bookings, a player's history,
// and the owner-facing listing of a field's bookings.
type Service struct {
	bookingRepo BookingRepository
	fieldRepo   FieldRepository
	logger      Logger
}

// NewService creates the booking query service
func NewService(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		fieldRepo:   fieldRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking. Visible to the booking's author and to the
// owner of the booked field.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings fetches a player's booking history, optionally filtered
// by status.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetFieldBookings fetches a field's bookings with period and status
// filters. Available only to the field's owner.
//
// A single-date schedule comes from setting StartDate and EndDate to the
// same day; cancelled bookings appear only with IncludeInactive.
func (s *Service) GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFieldBookings: fetching bookings for field=%d, user=%d", req.FieldID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.FieldID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFieldBookings: invalid filter for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByFieldWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFieldBookings: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldBookings: successfully fetched %d bookings for field=%d", len(bookings), req.FieldID)
	return models.FromDomainBookingList(bookings), nil
}

// MarkCompleted flips a confirmed booking whose window has passed to the
// completed status. Available only to the field's owner.
func (s *Service) MarkCompleted(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("MarkCompleted: booking id=%d, user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("MarkCompleted: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkCompleted - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, booking.FieldID, userID); err != nil {
		return err
	}

	if booking.Status != domain.StatusConfirmed {
		s.logger.Warn("MarkCompleted: booking id=%d is %q, not confirmed", id, booking.Status)
		return fmt.Errorf("%w: only confirmed bookings can be completed", ErrInvalidStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		s.logger.Error("MarkCompleted: failed to update booking id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkCompleted - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkCompleted: booking id=%d completed", id)
	return nil
}

// checkUserAccess allows the booking's author and the booked field's owner
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	field, err := s.fieldRepo.GetByID(ctx, booking.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkUserAccess - repository error: %v", ErrInternal, err)
	}

	if field.OwnerID == userID {
		return nil
	}

	return ErrAccessDenied
}

// checkOwnerAccess allows only the field's owner
func (s *Service) checkOwnerAccess(ctx context.Context, fieldID int64, userID int64) error {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("checkOwnerAccess: field id=%d not found", fieldID)
			return ErrFieldNotFound
		}
		return fmt.Errorf("%w: checkOwnerAccess - repository error: %v", ErrInternal, err)
	}

	if field.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d does not own field id=%d", userID, fieldID)
		return ErrAccessDenied
	}

	return nil
}
