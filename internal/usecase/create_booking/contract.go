package create_booking

import (
	"context"
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// FieldRepository is the slice of field storage this use case needs
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	GetSlotsByDate(ctx context.Context, fieldID int64, date string) ([]domain.TimeSlot, error)
	MarkSlotsUnavailable(ctx context.Context, fieldID int64, date string, startTimes []types.TimeString) (int64, error)
}

// BookingRepository is the slice of booking storage this use case needs
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager runs the allocate-and-mutate sequence as one transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
