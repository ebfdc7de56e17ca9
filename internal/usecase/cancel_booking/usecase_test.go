package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	bookingRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/booking"
	"github.com/Long0701/PitchSpot-BookingService/pkg/ptr"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	cancelErr error

	cancelled     bool
	cancelledWith string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.cancelled {
		cancelled := *f.booking
		cancelled.Status = domain.StatusCancelled
		cancelled.CancellationReason = &f.cancelledWith
		cancelled.CancelledAt = ptr.Ptr(time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC))
		return &cancelled, nil
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = true
	f.cancelledWith = reason
	return nil
}

type fakeFieldRepo struct {
	field *domain.Field

	releasedDate   string
	releasedStarts []types.TimeString
}

func (f *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	return f.field, nil
}

func (f *fakeFieldRepo) MarkSlotsAvailable(_ context.Context, _ int64, date string, startTimes []types.TimeString) (int64, error) {
	f.releasedDate = date
	f.releasedStarts = startTimes
	return int64(len(startTimes)), nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:            501,
		UserID:        7,
		FieldID:       10,
		BookingDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime:     types.NewHourTimeString(14),
		EndTime:       types.NewHourTimeString(17),
		DurationHours: 3,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, fields *fakeFieldRepo) *UseCase {
	return NewUseCase(bookings, fields, fakeTxManager{}, noopLogger{})
}

func TestExecute_AuthorCancelsAndSlotsAreReleased(t *testing.T) {
	bookings := &fakeBookingRepo{booking: confirmedBooking()}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2, IsActive: true}}
	uc := newTestUseCase(bookings, fields)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 501,
		UserID:    7,
		Role:      domain.RolePlayer,
		Reason:    ptr.Ptr("rain"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "rain", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)

	assert.Equal(t, "2026-09-05", fields.releasedDate)
	require.Len(t, fields.releasedStarts, 3, "every hourly slot of the window must be released")
	assert.Equal(t, types.NewHourTimeString(14), fields.releasedStarts[0])
	assert.Equal(t, types.NewHourTimeString(16), fields.releasedStarts[2])
}

func TestExecute_FieldOwnerCanCancel(t *testing.T) {
	bookings := &fakeBookingRepo{booking: confirmedBooking()}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2, IsActive: true}}
	uc := newTestUseCase(bookings, fields)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 501,
		UserID:    2,
		Role:      domain.RoleOwner,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestExecute_StrangerDenied(t *testing.T) {
	bookings := &fakeBookingRepo{booking: confirmedBooking()}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2, IsActive: true}}
	uc := newTestUseCase(bookings, fields)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 501,
		UserID:    99,
		Role:      domain.RolePlayer,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, bookings.cancelled)
	assert.Nil(t, fields.releasedStarts)
}

func TestExecute_OtherOwnerDenied(t *testing.T) {
	bookings := &fakeBookingRepo{booking: confirmedBooking()}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2, IsActive: true}}
	uc := newTestUseCase(bookings, fields)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 501,
		UserID:    3,
		Role:      domain.RoleOwner,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	bookings := &fakeBookingRepo{booking: booking}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}}
	uc := newTestUseCase(bookings, fields)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 501,
		UserID:    7,
		Role:      domain.RolePlayer,
	})

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Nil(t, fields.releasedStarts, "slots must not be double-released")
}

func TestExecute_CompletedNotCancellable(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCompleted
	bookings := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(bookings, &fakeFieldRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 501,
		UserID:    7,
		Role:      domain.RolePlayer,
	})

	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bookings, &fakeFieldRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 404,
		UserID:    7,
		Role:      domain.RolePlayer,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFieldRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, UserID: 7, Role: domain.RolePlayer})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Role: domain.Role("admin")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
