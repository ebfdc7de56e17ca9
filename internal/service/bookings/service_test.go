package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	bookingRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/booking"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/bookings/models"
	"github.com/Long0701/PitchSpot-BookingService/pkg/ptr"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking
	getErr   error

	gotUserStatus *domain.BookingStatus
	gotFilter     *domain.FieldBookingsFilter
	updatedStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.gotUserStatus = status
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByFieldWithFilter(_ context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = &filter
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakeFieldRepo struct {
	field *domain.Field
	err   error
}

func (f *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.field, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            501,
		UserID:        7,
		FieldID:       10,
		BookingDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime:     types.NewHourTimeString(14),
		EndTime:       types.NewHourTimeString(16),
		DurationHours: 2,
		TotalCost:     255000,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
}

func testService(bookings *fakeBookingRepo, fields *fakeFieldRepo) *Service {
	return NewService(bookings, fields, noopLogger{})
}

func TestGetByID_Author(t *testing.T) {
	svc := testService(&fakeBookingRepo{booking: testBooking()}, &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}})

	resp, err := svc.GetByID(context.Background(), 501, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(501), resp.ID)
	assert.Equal(t, "2026-09-05", resp.BookingDate)
	assert.Equal(t, int64(255000), resp.TotalCost)
}

func TestGetByID_FieldOwner(t *testing.T) {
	svc := testService(&fakeBookingRepo{booking: testBooking()}, &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}})

	resp, err := svc.GetByID(context.Background(), 501, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(501), resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := testService(&fakeBookingRepo{booking: testBooking()}, &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}})

	_, err := svc.GetByID(context.Background(), 501, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := testService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeFieldRepo{})

	_, err := svc.GetByID(context.Background(), 404, 7)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking()}}
	svc := testService(repo, &fakeFieldRepo{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.gotUserStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.gotUserStatus)
}

func TestGetUserBookings_BadStatus(t *testing.T) {
	svc := testService(&fakeBookingRepo{}, &fakeFieldRepo{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: ptr.Ptr("teleported"),
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetFieldBookings_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking()}}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}}
	svc := testService(repo, fields)

	start := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetFieldBookings(context.Background(), &models.GetFieldBookingsRequest{
		FieldID:   10,
		UserID:    2,
		StartDate: &start,
		EndDate:   &start,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.gotFilter)
	assert.Equal(t, int64(10), repo.gotFilter.FieldID)

	_, err = svc.GetFieldBookings(context.Background(), &models.GetFieldBookingsRequest{FieldID: 10, UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetFieldBookings_InvertedPeriod(t *testing.T) {
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}}
	svc := testService(&fakeBookingRepo{}, fields)

	start := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -3)
	_, err := svc.GetFieldBookings(context.Background(), &models.GetFieldBookingsRequest{
		FieldID:   10,
		UserID:    2,
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkCompleted(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}}
	svc := testService(repo, fields)

	err := svc.MarkCompleted(context.Background(), 501, 2)

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
}

func TestMarkCompleted_OnlyConfirmed(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{booking: booking}
	fields := &fakeFieldRepo{field: &domain.Field{ID: 10, OwnerID: 2}}
	svc := testService(repo, fields)

	err := svc.MarkCompleted(context.Background(), 501, 2)

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, repo.updatedStatus)
}
