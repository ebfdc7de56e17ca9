package domain

import "time"

// SportType enumerates the sports a field can host
type SportType string

const (
	SportFootball   SportType = "football"
	SportBadminton  SportType = "badminton"
	SportTennis     SportType = "tennis"
	SportVolleyball SportType = "volleyball"
	SportBasketball SportType = "basketball"
	SportPickleball SportType = "pickleball"
)

// SportTypes lists every supported sport, used for validation
var SportTypes = []SportType{
	SportFootball,
	SportBadminton,
	SportTennis,
	SportVolleyball,
	SportBasketball,
	SportPickleball,
}

// ValidSportType reports whether s is a supported sport
func ValidSportType(s SportType) bool {
	for _, t := range SportTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Location is a field's address and coordinates
type Location struct {
	Address   string
	City      string
	Latitude  float64
	Longitude float64
}

// Pricing holds a field's base rate. Individual slots carry their own price
// seeded from this rate with per-slot variation.
type Pricing struct {
	HourlyRate int64
	Currency   string
}

// Field represents a bookable sports venue. It owns a rolling horizon of
// hourly time slots; slots are mutated in place when bookings are made or
// cancelled and are never removed. Deactivation is a soft delete: slots are
// retained but the field no longer advertises availability.
type Field struct {
	ID          int64
	Name        string
	Description string
	SportType   SportType
	Location    Location
	Pricing     Pricing
	OwnerID     int64
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldsFilter describes the public field listing query
type FieldsFilter struct {
	City      *string
	SportType *SportType
	MinPrice  *int64
	MaxPrice  *int64
	Page      int
	Limit     int
}
