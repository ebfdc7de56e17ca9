package domain

import (
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// TimeSlot is one fixed one-hour bookable unit of a field's schedule.
// Slots have no standalone identity: within a field they are uniquely
// addressed by (date, startTime), and EndTime is always StartTime plus one
// hour.
type TimeSlot struct {
	Date        string // YYYY-MM-DD
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	Price       int64
}

// Key returns the slot's identity within its field
func (s TimeSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, StartTime: s.StartTime}
}

// SlotKey uniquely addresses a slot within a field
type SlotKey struct {
	Date      string
	StartTime types.TimeString
}

// String renders the key for log and error messages
func (k SlotKey) String() string {
	return fmt.Sprintf("%s %s", k.Date, k.StartTime)
}
