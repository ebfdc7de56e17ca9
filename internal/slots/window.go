package slots

import (
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

// DecomposeWindow splits the half-open window [startTime, endTime) into the
// ordered starts of its constituent hourly slots. Both boundaries must be
// valid "HH:00" times; anything else cannot match a slot and is rejected
// rather than rounded.
//
// DecomposeWindow("14:00", "16:00") == ["14:00", "15:00"].
func DecomposeWindow(startTime, endTime types.TimeString) ([]types.TimeString, error) {
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if err := endTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if !startTime.IsHourAligned() || !endTime.IsHourAligned() {
		return nil, fmt.Errorf("%w: %s-%s", ErrNotHourAligned, startTime, endTime)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: %s-%s", ErrEmptyWindow, startTime, endTime)
	}

	startHour, err := startTime.Hour()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	endHour, err := endTime.Hour()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	hours := make([]types.TimeString, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		hours = append(hours, types.NewHourTimeString(h))
	}

	return hours, nil
}

// WindowDuration returns the window length in whole hours
func WindowDuration(startTime, endTime types.TimeString) (int, error) {
	hours, err := DecomposeWindow(startTime, endTime)
	if err != nil {
		return 0, err
	}
	return len(hours), nil
}
