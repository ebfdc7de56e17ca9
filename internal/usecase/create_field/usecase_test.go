package create_field

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

type fakeFieldRepo struct {
	err error

	gotField *domain.Field
	gotSlots []domain.TimeSlot
}

func (f *fakeFieldRepo) Create(_ context.Context, field *domain.Field, slotSet []domain.TimeSlot) (*domain.Field, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotField = field
	f.gotSlots = slotSet
	stored := *field
	stored.ID = 10
	stored.CreatedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	return &stored, nil
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

func validRequest() *Request {
	return &Request{
		OwnerID:   2,
		Role:      domain.RoleOwner,
		Name:      "Central Pitch",
		SportType: domain.SportFootball,
		Location: domain.Location{
			Address:   "12 Nguyen Hue",
			City:      "Ho Chi Minh City",
			Latitude:  10.77,
			Longitude: 106.70,
		},
		HourlyRate: 200000,
	}
}

func newTestUseCase(repo *fakeFieldRepo) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CreatesFieldWithSlotHorizon(t *testing.T) {
	repo := &fakeFieldRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, domain.CurrencyVND, resp.Pricing.Currency, "currency defaults to VND")

	wantSlots := domain.DefaultDaysAhead * (domain.DefaultEndHour - domain.DefaultStartHour)
	assert.Equal(t, wantSlots, resp.SlotsSeeded)
	require.Len(t, repo.gotSlots, wantSlots)

	assert.Equal(t, "2026-09-01", repo.gotSlots[0].Date, "horizon starts today")
	assert.Equal(t, "2026-09-14", repo.gotSlots[len(repo.gotSlots)-1].Date)

	for _, s := range repo.gotSlots {
		assert.GreaterOrEqual(t, s.Price, int64(200000), "slot price starts at the hourly rate")
		assert.Less(t, s.Price, int64(200000+60000), "variation stays under 30%% of the rate")
	}
}

func TestExecute_PlayerDenied(t *testing.T) {
	uc := newTestUseCase(&fakeFieldRepo{})

	req := validRequest()
	req.Role = domain.RolePlayer

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty name", func(req *Request) { req.Name = "  " }},
		{"unknown sport", func(req *Request) { req.SportType = "chess" }},
		{"missing address", func(req *Request) { req.Location.Address = "" }},
		{"missing city", func(req *Request) { req.Location.City = "" }},
		{"latitude out of range", func(req *Request) { req.Location.Latitude = 91 }},
		{"longitude out of range", func(req *Request) { req.Location.Longitude = -181 }},
		{"zero hourly rate", func(req *Request) { req.HourlyRate = 0 }},
		{"unsupported currency", func(req *Request) { req.Currency = "EUR" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeFieldRepo{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StorageFailure(t *testing.T) {
	uc := newTestUseCase(&fakeFieldRepo{err: errors.New("db down")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
