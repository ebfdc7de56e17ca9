package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	fieldRepo "github.com/Long0701/PitchSpot-BookingService/internal/infra/storage/field"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/fields/models"
	"github.com/Long0701/PitchSpot-BookingService/pkg/ptr"
)

type fakeFieldRepo struct {
	field  *domain.Field
	fields []*domain.Field
	total  int64
	getErr error

	gotFilter  *domain.FieldsFilter
	setActive  *bool
	setFieldID int64
}

func (f *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.field, nil
}

func (f *fakeFieldRepo) List(_ context.Context, filter domain.FieldsFilter) ([]*domain.Field, error) {
	f.gotFilter = &filter
	return f.fields, nil
}

func (f *fakeFieldRepo) Count(_ context.Context, _ domain.FieldsFilter) (int64, error) {
	return f.total, nil
}

func (f *fakeFieldRepo) SetActive(_ context.Context, id int64, active bool) error {
	f.setFieldID = id
	f.setActive = &active
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testField() *domain.Field {
	return &domain.Field{
		ID:        10,
		Name:      "Central Pitch",
		SportType: domain.SportFootball,
		Location:  domain.Location{City: "Ho Chi Minh City"},
		Pricing:   domain.Pricing{HourlyRate: 200000, Currency: domain.CurrencyVND},
		OwnerID:   2,
		IsActive:  true,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeFieldRepo{field: testField()}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "Central Pitch", resp.Name)
	assert.Equal(t, int64(200000), resp.Pricing.HourlyRate)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeFieldRepo{getErr: fieldRepo.ErrFieldNotFound}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestList_FiltersAndPagination(t *testing.T) {
	repo := &fakeFieldRepo{fields: []*domain.Field{testField()}, total: 42}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListFieldsRequest{
		City:      ptr.Ptr("Ho Chi Minh City"),
		SportType: ptr.Ptr("football"),
		MinPrice:  ptr.Ptr(int64(100000)),
		Page:      2,
		Limit:     10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Total)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Fields, 1)

	require.NotNil(t, repo.gotFilter)
	assert.Equal(t, "Ho Chi Minh City", *repo.gotFilter.City)
	assert.Equal(t, domain.SportFootball, *repo.gotFilter.SportType)
	assert.Equal(t, int64(100000), *repo.gotFilter.MinPrice)
}

func TestList_ClampsPagination(t *testing.T) {
	repo := &fakeFieldRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.List(context.Background(), &models.ListFieldsRequest{Page: 0, Limit: 10000})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.gotFilter.Page)
	assert.Equal(t, domain.MaxPageLimit, repo.gotFilter.Limit)
}

func TestDeactivate_Owner(t *testing.T) {
	repo := &fakeFieldRepo{field: testField()}
	svc := NewService(repo, noopLogger{})

	err := svc.Deactivate(context.Background(), 10, 2)

	require.NoError(t, err)
	require.NotNil(t, repo.setActive)
	assert.False(t, *repo.setActive)
	assert.Equal(t, int64(10), repo.setFieldID)
}

func TestDeactivate_NonOwnerDenied(t *testing.T) {
	repo := &fakeFieldRepo{field: testField()}
	svc := NewService(repo, noopLogger{})

	err := svc.Deactivate(context.Background(), 10, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.setActive)
}
