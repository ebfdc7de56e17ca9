package create_field

import (
	"context"
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
)

// FieldRepository persists the new field together with its slot horizon
type FieldRepository interface {
	Create(ctx context.Context, field *domain.Field, slotSet []domain.TimeSlot) (*domain.Field, error)
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
