package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	"github.com/Long0701/PitchSpot-BookingService/internal/slots"
	createBooking "github.com/Long0701/PitchSpot-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgAccessDenied       = "only players can create bookings"
	msgFieldNotFound      = "field not found"
	msgFieldInactive      = "field is not active"
	msgInvalidBookingDate = "booking date is in the past"
	msgSlotConflict       = "slot was just taken, refresh availability and retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: user_id=%d, field_id=%d", identity.UserID, req.FieldID)
			handlers.RespondBadRequest(w, slotUnavailableMessage(err))

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, field_id=%d", identity.UserID, req.FieldID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrFieldNotFound):
			h.logger.Warn("POST /bookings - Field not found: field_id=%d", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, createBooking.ErrFieldInactive):
			h.logger.Warn("POST /bookings - Field inactive: field_id=%d", req.FieldID)
			handlers.RespondNotFound(w, msgFieldInactive)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, field_id=%d", identity.UserID, req.FieldID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, field_id=%d: %v", identity.UserID, req.FieldID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, field_id=%d, error=%v",
				identity.UserID, req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, field_id=%d",
		result.ID, identity.UserID, req.FieldID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// slotUnavailableMessage names the first hour that blocked the window when
// the error carries it.
func slotUnavailableMessage(err error) string {
	var rangeErr *slots.UnavailableRangeError
	if errors.As(err, &rangeErr) {
		return fmt.Sprintf("slot %s %s-%s is not available", rangeErr.Date, rangeErr.StartTime, rangeErr.EndTime)
	}
	return "requested time window is not available"
}
