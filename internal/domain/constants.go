package domain

// Default slot generation parameters. A freshly created field gets hourly
// slots for DefaultDaysAhead days between DefaultStartHour and DefaultEndHour,
// priced around the field's hourly rate.
const (
	DefaultStartHour        = 8
	DefaultEndHour          = 22
	DefaultDaysAhead        = 14
	DefaultBasePrice        = 100000
	DefaultPriceVariation   = 50000
	DefaultAvailabilityRate = 0.7

	// PriceVariationFactor scales a field's hourly rate into the per-slot
	// price variation applied on generation
	PriceVariationFactor = 0.3
)

// Business validation constants
const (
	MinFieldNameLength   = 2
	MaxFieldNameLength   = 200
	MinDescriptionLength = 10
	MaxDescriptionLength = 1000
	MaxNotesLength       = 500
	MaxBookingHours      = 24

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Currencies accepted for field pricing
const (
	CurrencyVND = "VND"
	CurrencyUSD = "USD"
)

// ValidCurrency reports whether c is an accepted pricing currency
func ValidCurrency(c string) bool {
	return c == CurrencyVND || c == CurrencyUSD
}

// InactiveStatuses lists booking statuses that do not hold slots.
// Used when filtering bookings for availability checks.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses lists booking statuses that hold slots
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
