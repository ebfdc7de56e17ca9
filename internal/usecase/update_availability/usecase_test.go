package update_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/pkg/ptr"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

type fakeFieldRepo struct {
	field  *domain.Field
	getErr error

	updatedStarts    []types.TimeString
	updatedAvailable bool
	updatedPrice     *int64
}

func (f *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.field, nil
}

func (f *fakeFieldRepo) GetSlotsByDate(_ context.Context, _ int64, _ string) ([]domain.TimeSlot, error) {
	return nil, nil
}

func (f *fakeFieldRepo) UpdateSlots(_ context.Context, _ int64, _ string, startTimes []types.TimeString, available bool, price *int64) (int64, error) {
	f.updatedStarts = startTimes
	f.updatedAvailable = available
	f.updatedPrice = price
	return int64(len(startTimes)), nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByFieldWithFilter(_ context.Context, _ domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func ownedField() *domain.Field {
	return &domain.Field{ID: 10, OwnerID: 2, IsActive: true}
}

func newTestUseCase(fields *fakeFieldRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(fields, bookings, fakeTxManager{}, noopLogger{})
}

func blockRequest() *Request {
	return &Request{
		UserID:     2,
		Role:       domain.RoleOwner,
		FieldID:    10,
		Date:       "2026-09-05",
		StartTimes: []types.TimeString{types.NewHourTimeString(14), types.NewHourTimeString(15)},
		Available:  false,
	}
}

func TestExecute_OwnerBlocksSlots(t *testing.T) {
	fields := &fakeFieldRepo{field: ownedField()}
	uc := newTestUseCase(fields, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), blockRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)
	assert.False(t, fields.updatedAvailable)
	require.Len(t, fields.updatedStarts, 2)
}

func TestExecute_OwnerRepricesSlots(t *testing.T) {
	fields := &fakeFieldRepo{field: ownedField()}
	uc := newTestUseCase(fields, &fakeBookingRepo{})

	req := blockRequest()
	req.Available = true
	req.Price = ptr.Ptr(int64(150000))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)
	require.NotNil(t, fields.updatedPrice)
	assert.Equal(t, int64(150000), *fields.updatedPrice)
}

func TestExecute_ReopeningHeldSlotRefused(t *testing.T) {
	fields := &fakeFieldRepo{field: ownedField()}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:        501,
			FieldID:   10,
			Status:    domain.StatusConfirmed,
			StartTime: types.NewHourTimeString(15),
			EndTime:   types.NewHourTimeString(17),
		},
	}}
	uc := newTestUseCase(fields, bookings)

	req := blockRequest()
	req.Available = true

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotHeldByBooking)
	assert.Nil(t, fields.updatedStarts, "held slots must not be reopened")
}

func TestExecute_ReopeningPastCancelledBookingAllowed(t *testing.T) {
	fields := &fakeFieldRepo{field: ownedField()}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:        501,
			FieldID:   10,
			Status:    domain.StatusCancelled,
			StartTime: types.NewHourTimeString(14),
			EndTime:   types.NewHourTimeString(16),
		},
	}}
	uc := newTestUseCase(fields, bookings)

	req := blockRequest()
	req.Available = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)
}

func TestExecute_BlockingHeldSlotAllowed(t *testing.T) {
	// Blocking an already booked slot is a no-op for the booking; only
	// reopening is guarded.
	fields := &fakeFieldRepo{field: ownedField()}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:        501,
			FieldID:   10,
			Status:    domain.StatusConfirmed,
			StartTime: types.NewHourTimeString(14),
			EndTime:   types.NewHourTimeString(16),
		},
	}}
	uc := newTestUseCase(fields, bookings)

	_, err := uc.Execute(context.Background(), blockRequest())

	require.NoError(t, err)
}

func TestExecute_NonOwnerDenied(t *testing.T) {
	fields := &fakeFieldRepo{field: ownedField()}
	uc := newTestUseCase(fields, &fakeBookingRepo{})

	req := blockRequest()
	req.UserID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_PlayerDenied(t *testing.T) {
	uc := newTestUseCase(&fakeFieldRepo{field: ownedField()}, &fakeBookingRepo{})

	req := blockRequest()
	req.Role = domain.RolePlayer

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_FieldNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeFieldRepo{getErr: fieldRepo.ErrFieldNotFound}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), blockRequest())
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeFieldRepo{field: ownedField()}, &fakeBookingRepo{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"bad date", func(req *Request) { req.Date = "05.09.2026" }},
		{"no slots", func(req *Request) { req.StartTimes = nil }},
		{"misaligned slot", func(req *Request) { req.StartTimes = []types.TimeString{"14:30"} }},
		{"invalid time", func(req *Request) { req.StartTimes = []types.TimeString{"25:00"} }},
		{"zero price", func(req *Request) { req.Price = ptr.Ptr(int64(0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := blockRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
