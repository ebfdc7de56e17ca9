package slots

import (
	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// Match is the result of a successful availability lookup: the ordered slots
// covering the requested window and their summed price.
type Match struct {
	Slots     []domain.TimeSlot
	TotalCost int64
}

// Keys returns the matched slots' identities, in window order
func (m *Match) Keys() []domain.SlotKey {
	keys := make([]domain.SlotKey, len(m.Slots))
	for i, s := range m.Slots {
		keys[i] = s.Key()
	}
	return keys
}

// FindContiguousAvailable checks that every hourly slot of the half-open
// window [startTime, endTime) on the given date exists in slotSet and is
// available. The check is all-or-nothing: the first missing or unavailable
// hour fails the whole window with an *UnavailableRangeError naming that
// hour. On success the matched slots are returned in window order together
// with their summed price.
//
// Lookup is by exact (date, startTime) key; the day-major ordering of
// generated slot sets is not relied upon.
func FindContiguousAvailable(slotSet []domain.TimeSlot, date string, startTime, endTime types.TimeString) (*Match, error) {
	hours, err := DecomposeWindow(startTime, endTime)
	if err != nil {
		return nil, err
	}

	index := indexByKey(slotSet)

	match := &Match{Slots: make([]domain.TimeSlot, 0, len(hours))}

	for _, hour := range hours {
		slot, ok := index[domain.SlotKey{Date: date, StartTime: hour}]
		if !ok || !slot.IsAvailable {
			hourEnd, addErr := hour.AddMinutes(60)
			if addErr != nil {
				hourEnd = endTime
			}
			return nil, &UnavailableRangeError{
				Date:      date,
				StartTime: hour,
				EndTime:   hourEnd,
			}
		}

		match.Slots = append(match.Slots, slot)
		match.TotalCost += slot.Price
	}

	return match, nil
}

// indexByKey builds a key lookup over a slot set. Later duplicates would
// shadow earlier ones, but the storage layer enforces key uniqueness.
func indexByKey(slotSet []domain.TimeSlot) map[domain.SlotKey]domain.TimeSlot {
	index := make(map[domain.SlotKey]domain.TimeSlot, len(slotSet))
	for _, s := range slotSet {
		index[s.Key()] = s
	}
	return index
}
