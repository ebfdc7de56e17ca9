package get_available_slots

import (
	getAvailableSlots "github.com/Long0701/PitchSpot-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse is one hourly slot of the schedule
type SlotResponse struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	Price       int64  `json:"price"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	FieldID  int64          `json:"fieldId"`
	Date     string         `json:"date"`
	Currency string         `json:"currency"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			IsAvailable: s.IsAvailable,
			Price:       s.Price,
		})
	}
	return &SlotsResponse{
		FieldID:  resp.FieldID,
		Date:     resp.Date,
		Currency: resp.Currency,
		Slots:    slots,
	}
}
