package update_availability

import (
	"context"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// FieldRepository is the slice of field storage this use case needs
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	GetSlotsByDate(ctx context.Context, fieldID int64, date string) ([]domain.TimeSlot, error)
	UpdateSlots(ctx context.Context, fieldID int64, date string, startTimes []types.TimeString, available bool, price *int64) (int64, error)
}

// BookingRepository checks for active bookings overlapping the edited slots
type BookingRepository interface {
	GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
}

// TransactionManager runs the check-and-update sequence as one transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
