package cancel_booking

import (
	"context"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// BookingRepository is the slice of booking storage this use case needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// FieldRepository resolves the booked field and releases its slots
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	MarkSlotsAvailable(ctx context.Context, fieldID int64, date string, startTimes []types.TimeString) (int64, error)
}

// TransactionManager runs the cancel-and-release sequence as one transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
