// Package slots implements the time-slot engine: horizon generation for new
// fields, contiguous-availability lookup for booking windows, and the
// availability-state mutations applied when slots are consumed or released.
package slots

import (
	"math/rand"
	"time"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// Options configures slot generation. Use DefaultOptions as the base and
// override the fields that matter; zero values are taken literally, so a
// PriceVariation of 0 really means fixed prices and an AvailabilityRate of 0
// means no slot starts out available.
type Options struct {
	StartHour        int     // First bookable hour of the day
	EndHour          int     // Hour the facility closes; last slot starts one hour before
	DaysAhead        int     // Rolling horizon length in days
	BasePrice        int64   // Base slot price in the field's currency unit
	PriceVariation   int64   // Upper bound (exclusive) of the random price markup
	AvailabilityRate float64 // Probability that a generated slot starts out available

	// Rand is the randomness source for price variation and availability
	// seeding. Inject a seeded source for reproducible output; nil falls back
	// to a time-seeded source.
	Rand *rand.Rand

	// Today anchors the horizon. The zero value means time.Now().
	Today time.Time
}

// DefaultOptions returns the standard generation parameters: 14 days of
// hourly slots between 08:00 and 22:00, priced 100000 plus up to 50000
// variation, with 70% of slots seeded available.
func DefaultOptions() Options {
	return Options{
		StartHour:        domain.DefaultStartHour,
		EndHour:          domain.DefaultEndHour,
		DaysAhead:        domain.DefaultDaysAhead,
		BasePrice:        domain.DefaultBasePrice,
		PriceVariation:   domain.DefaultPriceVariation,
		AvailabilityRate: domain.DefaultAvailabilityRate,
	}
}

// FieldOptions returns generation parameters derived from a field's pricing:
// the hourly rate becomes the base price and the variation is a fixed
// fraction of it.
func FieldOptions(pricing domain.Pricing) Options {
	opts := DefaultOptions()
	opts.BasePrice = pricing.HourlyRate
	opts.PriceVariation = int64(float64(pricing.HourlyRate) * domain.PriceVariationFactor)
	return opts
}

// Generate produces the slot horizon described by opts: for each day offset
// in [0, DaysAhead) and each hour in [StartHour, EndHour), one one-hour slot.
// Output is ordered day-major, hour-ascending; consumers must nevertheless
// look slots up by (date, startTime) key, not by position.
func Generate(opts Options) []domain.TimeSlot {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	hoursPerDay := opts.EndHour - opts.StartHour
	if hoursPerDay < 0 {
		hoursPerDay = 0
	}

	result := make([]domain.TimeSlot, 0, opts.DaysAhead*hoursPerDay)

	for day := 0; day < opts.DaysAhead; day++ {
		date := today.AddDate(0, 0, day).Format(domain.DateFormat)

		for hour := opts.StartHour; hour < opts.EndHour; hour++ {
			price := opts.BasePrice
			if opts.PriceVariation > 0 {
				price += rng.Int63n(opts.PriceVariation)
			}

			result = append(result, domain.TimeSlot{
				Date:        date,
				StartTime:   types.NewHourTimeString(hour),
				EndTime:     types.NewHourTimeString(hour + 1),
				IsAvailable: rng.Float64() < opts.AvailabilityRate,
				Price:       price,
			})
		}
	}

	return result
}
