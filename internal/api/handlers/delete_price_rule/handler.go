package delete_price_rule

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
	msgInvalidRuleID  = "некорректный ID правила"
	msgRuleNotFound   = "правило не найдено"
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

// Handle DELETE /api/v1/courts/{courtId}/price-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /courts/{id}/price-rules/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем ruleId из URL
	ruleIDStr := vars["ruleId"]
	ruleID, err := strconv.ParseInt(ruleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /courts/{id}/price-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	// Вызываем сервис
	if err := h.service.Delete(r.Context(), courtID, ruleID); err != nil {
		switch {
		case errors.Is(err, pricerules.ErrRuleNotFound):
			h.logger.Warn("DELETE /courts/{id}/price-rules/{id} - Rule not found: court_id=%d, rule_id=%d",
				courtID, ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /courts/{id}/price-rules/{id} - Failed to delete rule: court_id=%d, rule_id=%d, error=%v",
				courtID, ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/{id}/price-rules/{id} - Rule deleted: court_id=%d, rule_id=%d", courtID, ruleID)
	w.WriteHeader(http.StatusNoContent)
}
