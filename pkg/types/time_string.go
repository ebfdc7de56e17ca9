package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat is the wire and storage format for times of day.
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// TimeString represents a time of day as an "HH:MM" string.
// It is used for slot boundaries and booking windows, where only the wall-clock
// time within a single day matters.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only hours and minutes
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewHourTimeString creates a TimeString for a whole hour, e.g. NewHourTimeString(8) == "08:00"
func NewHourTimeString(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour))
}

// Validate checks that the value is a parseable "HH:MM" time
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Hour returns the hour component (0-23)
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), nil
}

// Minute returns the minute component (0-59)
func (t TimeString) Minute() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Minute(), nil
}

// IsHourAligned returns true if the time falls exactly on an hour boundary ("HH:00")
func (t TimeString) IsHourAligned() bool {
	minute, err := t.Minute()
	if err != nil {
		return false
	}
	return minute == 0
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// The result wraps within a single day, matching time.Time formatting behaviour.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore returns true if t is strictly earlier than other.
// Lexicographic comparison is correct for zero-padded "HH:MM" strings.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer for storing the value as text
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as strings
// like "08:00:00", so anything longer than "HH:MM" is truncated.
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}

	if len(s) > len(TimeFormat) {
		s = s[:len(TimeFormat)]
	}

	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
