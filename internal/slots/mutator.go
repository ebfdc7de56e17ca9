package slots

import "github.com/Long0701/PitchSpot-BookingService/internal/domain"

// MarkUnavailable returns a copy of slotSet with exactly the slots addressed
// by keys flipped to unavailable. All other entries are unchanged. Matching
// is by exact (date, startTime) key, never by range comparison: a range
// predicate could silently catch boundary slots if slot widths ever became
// non-uniform.
func MarkUnavailable(slotSet []domain.TimeSlot, keys []domain.SlotKey) []domain.TimeSlot {
	return setAvailability(slotSet, keys, false)
}

// MarkAvailable returns a copy of slotSet with exactly the slots addressed
// by keys flipped back to available, used when a booking is cancelled or an
// owner reopens slots.
func MarkAvailable(slotSet []domain.TimeSlot, keys []domain.SlotKey) []domain.TimeSlot {
	return setAvailability(slotSet, keys, true)
}

func setAvailability(slotSet []domain.TimeSlot, keys []domain.SlotKey, available bool) []domain.TimeSlot {
	targets := make(map[domain.SlotKey]struct{}, len(keys))
	for _, k := range keys {
		targets[k] = struct{}{}
	}

	result := make([]domain.TimeSlot, len(slotSet))
	for i, slot := range slotSet {
		if _, ok := targets[slot.Key()]; ok {
			slot.IsAvailable = available
		}
		result[i] = slot
	}

	return result
}
