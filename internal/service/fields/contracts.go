package fields

import (
	"context"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

// FieldRepository is the field storage interface
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	List(ctx context.Context, filter domain.FieldsFilter) ([]*domain.Field, error)
	Count(ctx context.Context, filter domain.FieldsFilter) (int64, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
