package update_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	updateAvailability "github.com/Long0701/PitchSpot-BookingService/internal/usecase/update_availability"
)

const (
	msgInvalidFieldID     = "invalid field id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid slot time, expected HH:00"
	msgFieldNotFound      = "field not found"
	msgAccessDenied       = "only the field owner can edit slots"
	msgSlotHeld           = "slot is held by an active booking, cancel it first"
)

type Handler struct {
	useCase UpdateAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/fields/{id}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	fieldID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || fieldID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /fields/%d/slots - Invalid request body: %v", fieldID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity, fieldID)
	if err != nil {
		h.logger.Warn("PUT /fields/%d/slots - Failed to parse request: %v", fieldID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAvailability.ErrFieldNotFound):
			h.logger.Warn("PUT /fields/%d/slots - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, updateAvailability.ErrAccessDenied):
			h.logger.Warn("PUT /fields/%d/slots - Access denied: user_id=%d", fieldID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateAvailability.ErrSlotHeldByBooking):
			h.logger.Warn("PUT /fields/%d/slots - Slot held by booking: %v", fieldID, err)
			handlers.RespondConflict(w, msgSlotHeld)

		case errors.Is(err, updateAvailability.ErrInvalidInput):
			h.logger.Warn("PUT /fields/%d/slots - Invalid input: %v", fieldID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /fields/%d/slots - Failed: user_id=%d, error=%v", fieldID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /fields/%d/slots - %d slots updated by user_id=%d", fieldID, result.Updated, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
