package list_price_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/pricerules"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgCourtNotFound  = "корт не найден"
)

type Handler struct {
	service PriceRulesService
	logger  Logger
}

func NewHandler(service PriceRulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/price-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price-rules - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Вызываем сервис
	result, err := h.service.ListByCourt(r.Context(), courtID)
	if err != nil {
		switch {
		case errors.Is(err, pricerules.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/price-rules - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, pricerules.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/price-rules - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)

		default:
			h.logger.Error("GET /courts/{id}/price-rules - Failed to list rules: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/price-rules - Rules retrieved: court_id=%d, rules_count=%d",
		courtID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
