package create_field

import (
	"errors"
	"net/http"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	createField "github.com/Long0701/PitchSpot-BookingService/internal/usecase/create_field"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAccessDenied       = "only owners can create fields"
)

type Handler struct {
	useCase CreateFieldUseCase
	logger  Logger
}

func NewHandler(useCase CreateFieldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	var req CreateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity))
	if err != nil {
		switch {
		case errors.Is(err, createField.ErrAccessDenied):
			h.logger.Warn("POST /fields - Access denied: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createField.ErrInvalidInput):
			h.logger.Warn("POST /fields - Invalid input: user_id=%d: %v", identity.UserID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /fields - Failed to create field: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields - Field created: field_id=%d, owner_id=%d, slots=%d",
		result.ID, identity.UserID, result.SlotsSeeded)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
