package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

type fakeFieldRepo struct {
	field   *domain.Field
	getErr  error
	slotSet []domain.TimeSlot
}

func (f *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.field, nil
}

func (f *fakeFieldRepo) GetSlotsByDate(_ context.Context, _ int64, _ string) ([]domain.TimeSlot, error) {
	return f.slotSet, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testField() *domain.Field {
	return &domain.Field{
		ID:       10,
		OwnerID:  2,
		IsActive: true,
		Pricing:  domain.Pricing{HourlyRate: 100000, Currency: domain.CurrencyVND},
	}
}

func daySlots() []domain.TimeSlot {
	return []domain.TimeSlot{
		{Date: "2026-09-05", StartTime: types.NewHourTimeString(8), EndTime: types.NewHourTimeString(9), IsAvailable: true, Price: 100000},
		{Date: "2026-09-05", StartTime: types.NewHourTimeString(9), EndTime: types.NewHourTimeString(10), IsAvailable: false, Price: 100000},
		{Date: "2026-09-05", StartTime: types.NewHourTimeString(10), EndTime: types.NewHourTimeString(11), IsAvailable: true, Price: 130000},
	}
}

func TestExecute_ReturnsFullSchedule(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField(), slotSet: daySlots()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 10, Date: "2026-09-05"})

	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyVND, resp.Currency)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.NewHourTimeString(8), resp.Slots[0].StartTime)
	assert.False(t, resp.Slots[1].IsAvailable)
	assert.Equal(t, int64(130000), resp.Slots[2].Price)
}

func TestExecute_OnlyAvailableFiltersBookedSlots(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField(), slotSet: daySlots()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 10, Date: "2026-09-05", OnlyAvailable: true})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	for _, s := range resp.Slots {
		assert.True(t, s.IsAvailable)
	}
}

func TestExecute_DateOutsideHorizonIsEmpty(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 10, Date: "2030-01-01"})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FieldNotFound(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{getErr: fieldRepo.ErrFieldNotFound}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 404, Date: "2026-09-05"})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_InactiveField(t *testing.T) {
	field := testField()
	field.IsActive = false
	uc := NewUseCase(&fakeFieldRepo{field: field}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 10, Date: "2026-09-05"})

	assert.ErrorIs(t, err, ErrFieldInactive)
}

func TestExecute_BadDate(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, noopLogger{})

	for _, date := range []string{"", "05-09-2026", "2026/09/05", "not-a-date"} {
		_, err := uc.Execute(context.Background(), &Request{FieldID: 10, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput, "date %q must be rejected", date)
	}
}
