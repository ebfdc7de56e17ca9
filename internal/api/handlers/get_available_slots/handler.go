package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/Long0701/PitchSpot-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidFieldID = "invalid field id"
	msgMissingDate    = "date query parameter is required, expected YYYY-MM-DD"
	msgFieldNotFound  = "field not found"
	msgFieldInactive  = "field is not active"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{id}/slots?date=2026-09-05&onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || fieldID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		FieldID:       fieldID,
		Date:          query.Get("date"),
		OnlyAvailable: query.Get("onlyAvailable") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFieldNotFound):
			h.logger.Warn("GET /fields/%d/slots - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailableSlots.ErrFieldInactive):
			h.logger.Warn("GET /fields/%d/slots - Field inactive", fieldID)
			handlers.RespondNotFound(w, msgFieldInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /fields/%d/slots - Invalid query: %v", fieldID, err)
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("GET /fields/%d/slots - Failed: error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
