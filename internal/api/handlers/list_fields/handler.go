package list_fields

import (
	"net/http"
	"strconv"

	"github.com/Long0701/PitchSpot-BookingService/internal/api/handlers"
	"github.com/Long0701/PitchSpot-BookingService/internal/service/fields/models"
)

const msgInvalidQuery = "invalid query parameters"

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

// Handle GET /api/v1/fields?city=...&sportType=...&minPrice=...&maxPrice=...&page=1&limit=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /fields - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /fields - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListFieldsRequest, error) {
	query := r.URL.Query()
	req := &models.ListFieldsRequest{}

	if city := query.Get("city"); city != "" {
		req.City = &city
	}
	if sport := query.Get("sportType"); sport != "" {
		req.SportType = &sport
	}

	if raw := query.Get("minPrice"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.MinPrice = &parsed
	}
	if raw := query.Get("maxPrice"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.MaxPrice = &parsed
	}

	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.Page = parsed
	}
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.Limit = parsed
	}

	return req, nil
}
