package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/internal/slots"
	"github.com/Long0701/PitchSpot-BookingService/pkg/ptr"
	"github.com/Long0701/PitchSpot-BookingService/pkg/txmanager"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

type fakeFieldRepo struct {
	field        *domain.Field
	getFieldErr  error
	slotSet      []domain.TimeSlot
	getSlotsErr  error
	markAffected int64
	markErr      error

	markedStarts []types.TimeString
	markedDate   string
}

func (f *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	if f.getFieldErr != nil {
		return nil, f.getFieldErr
	}
	return f.field, nil
}

func (f *fakeFieldRepo) GetSlotsByDate(_ context.Context, _ int64, _ string) ([]domain.TimeSlot, error) {
	if f.getSlotsErr != nil {
		return nil, f.getSlotsErr
	}
	return f.slotSet, nil
}

func (f *fakeFieldRepo) MarkSlotsUnavailable(_ context.Context, _ int64, date string, startTimes []types.TimeString) (int64, error) {
	if f.markErr != nil {
		return 0, f.markErr
	}
	f.markedDate = date
	f.markedStarts = startTimes
	if f.markAffected >= 0 {
		return f.markAffected, nil
	}
	return int64(len(startTimes)), nil
}

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *booking
	stored.ID = 501
	stored.CreatedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func activeField() *domain.Field {
	return &domain.Field{
		ID:      10,
		OwnerID: 2,
		Name:      "Central Pitch",
		SportType: domain.SportFootball,
		IsActive:  true,
		Pricing:  domain.Pricing{HourlyRate: 100000, Currency: domain.CurrencyVND},
	}
}

func slotsFor(date string, startHour, endHour int, prices map[int]int64) []domain.TimeSlot {
	set := make([]domain.TimeSlot, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		price := int64(100000)
		if p, ok := prices[h]; ok {
			price = p
		}
		set = append(set, domain.TimeSlot{
			Date:        date,
			StartTime:   types.NewHourTimeString(h),
			EndTime:     types.NewHourTimeString(h + 1),
			IsAvailable: true,
			Price:       price,
		})
	}
	return set
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		Role:      domain.RolePlayer,
		FieldID:   10,
		Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime: types.NewHourTimeString(14),
		EndTime:   types.NewHourTimeString(16),
	}
}

func newTestUseCase(fields *fakeFieldRepo, bookings *fakeBookingRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(fields, bookings, tx, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	fields := &fakeFieldRepo{
		field: activeField(),
		slotSet: slotsFor("2026-09-05", 8, 22, map[int]int64{
			14: 120000,
			15: 135000,
		}),
		markAffected: -1,
	}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(fields, bookings, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(501), resp.ID)
	assert.Equal(t, 2, resp.DurationHours)
	assert.Equal(t, int64(255000), resp.TotalCost, "total cost must be the sum of the per-slot prices")
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)

	require.Len(t, fields.markedStarts, 2)
	assert.Equal(t, types.NewHourTimeString(14), fields.markedStarts[0])
	assert.Equal(t, types.NewHourTimeString(15), fields.markedStarts[1])
	assert.Equal(t, "2026-09-05", fields.markedDate)
}

func TestExecute_SlotUnavailable_ReportsFirstConflictHour(t *testing.T) {
	slotSet := slotsFor("2026-09-05", 8, 22, nil)
	for i := range slotSet {
		if slotSet[i].StartTime == types.NewHourTimeString(15) {
			slotSet[i].IsAvailable = false
		}
	}
	fields := &fakeFieldRepo{field: activeField(), slotSet: slotSet, markAffected: -1}
	uc := newTestUseCase(fields, &fakeBookingRepo{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Nil(t, resp)
	require.ErrorIs(t, err, ErrSlotUnavailable)

	var rangeErr *slots.UnavailableRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, types.NewHourTimeString(15), rangeErr.StartTime)
	assert.Equal(t, types.NewHourTimeString(16), rangeErr.EndTime)

	assert.Nil(t, fields.markedStarts, "no slots must be mutated when the window is rejected")
}

func TestExecute_ConcurrentConflict(t *testing.T) {
	fields := &fakeFieldRepo{
		field:        activeField(),
		slotSet:      slotsFor("2026-09-05", 8, 22, nil),
		markAffected: 1, // one of the two slots was taken between read and write
	}
	uc := newTestUseCase(fields, &fakeBookingRepo{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SerializationFailure(t *testing.T) {
	fields := &fakeFieldRepo{field: activeField(), slotSet: slotsFor("2026-09-05", 8, 22, nil)}
	uc := newTestUseCase(fields, &fakeBookingRepo{}, &fakeTxManager{err: txmanager.ErrSerializationFailure})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_FieldNotFound(t *testing.T) {
	fields := &fakeFieldRepo{getFieldErr: fieldRepo.ErrFieldNotFound}
	uc := newTestUseCase(fields, &fakeBookingRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_FieldInactive(t *testing.T) {
	field := activeField()
	field.IsActive = false
	fields := &fakeFieldRepo{field: field}
	uc := newTestUseCase(fields, &fakeBookingRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFieldInactive)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "owner cannot book",
			mutate:  func(req *Request) { req.Role = domain.RoleOwner },
			wantErr: ErrAccessDenied,
		},
		{
			name:    "zero user id",
			mutate:  func(req *Request) { req.UserID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "non-aligned start time",
			mutate: func(req *Request) {
				req.StartTime = types.TimeString("14:30")
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "end before start",
			mutate: func(req *Request) {
				req.StartTime = types.NewHourTimeString(16)
				req.EndTime = types.NewHourTimeString(14)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "empty window",
			mutate: func(req *Request) {
				req.EndTime = req.StartTime
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "past date",
			mutate: func(req *Request) {
				req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrInvalidDate,
		},
		{
			name: "oversized notes",
			mutate: func(req *Request) {
				long := make([]byte, domain.MaxNotesLength+1)
				for i := range long {
					long[i] = 'x'
				}
				req.Notes = ptr.Ptr(string(long))
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := &fakeFieldRepo{field: activeField(), slotSet: slotsFor("2026-09-05", 8, 22, nil)}
			uc := newTestUseCase(fields, &fakeBookingRepo{}, &fakeTxManager{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_BookingCreateFailureAbortsMutation(t *testing.T) {
	fields := &fakeFieldRepo{field: activeField(), slotSet: slotsFor("2026-09-05", 8, 22, nil), markAffected: -1}
	bookings := &fakeBookingRepo{err: errors.New("db down")}
	uc := newTestUseCase(fields, bookings, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, fields.markedStarts)
}
