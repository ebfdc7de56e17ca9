package get_available_slots

import (
	"context"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

// FieldRepository is the slice of field storage this use case needs
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	GetSlotsByDate(ctx context.Context, fieldID int64, date string) ([]domain.TimeSlot, error)
}

// Logger is the logging interface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
