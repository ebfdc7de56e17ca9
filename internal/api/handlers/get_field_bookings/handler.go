package get_field_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	"github.com/Long0701/PitchSpot-BookingService/internal/api/middleware"
	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/bookings"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidFieldID = "invalid field id"
	msgInvalidPeriod  = "invalid period, expected startDate and endDate as YYYY-MM-DD"
	msgFieldNotFound  = "field not found"
	msgAccessDenied   = "only the field owner can view its bookings"
	msgInvalidFilter  = "invalid filter parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{id}/bookings?startDate=...&endDate=...&status=...&includeInactive=true
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

	req, err := parseQuery(r, fieldID, identity.UserID)
	if err != nil {
		h.logger.Warn("GET /fields/%d/bookings - Invalid query: %v", fieldID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetFieldBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFieldNotFound):
			h.logger.Warn("GET /fields/%d/bookings - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /fields/%d/bookings - Access denied: user_id=%d", fieldID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput), errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /fields/%d/bookings - Invalid filter: %v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /fields/%d/bookings - Failed: user_id=%d, error=%v", fieldID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request, fieldID, userID int64) (*models.GetFieldBookingsRequest, error) {
	query := r.URL.Query()

	req := &models.GetFieldBookingsRequest{
		FieldID:         fieldID,
		UserID:          userID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
	}

	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
