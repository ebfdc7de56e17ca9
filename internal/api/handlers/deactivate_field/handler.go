package deactivate_field

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/fields"
)

const (
	msgInvalidFieldID = "invalid field id"
	msgFieldNotFound  = "field not found"
	msgAccessDenied   = "only the field owner can deactivate it"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/fields/{id}
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

	if err := h.service.Deactivate(r.Context(), fieldID, identity.UserID); err != nil {
		switch {
		case errors.Is(err, fields.ErrFieldNotFound):
			h.logger.Warn("DELETE /fields/%d - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, fields.ErrAccessDenied):
			h.logger.Warn("DELETE /fields/%d - Access denied: user_id=%d", fieldID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /fields/%d - Failed: user_id=%d, error=%v", fieldID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fields/%d - Field deactivated by user_id=%d", fieldID, identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}
