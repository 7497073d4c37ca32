package update_price_rule

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	updatePriceRule "github.com/m04kA/SMC-CourtService/internal/usecase/update_price_rule"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRuleID      = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRule        = "некорректные параметры правила"
	msgCourtNotFound      = "корт не найден"
	msgRuleNotFound       = "правило не найдено"
	msgHolidayNotFound    = "праздничная дата не найдена"
	msgRuleConflict       = "правило пересекается с существующим правилом"
	// msgRuleConflictFmt называет тип и окно конфликтующего правила,
	// чтобы менеджер мог найти его в списке без повторных запросов
	msgRuleConflictFmt = "правило пересекается с существующим правилом %s (id=%d, окно %s)"
)

type Handler struct {
	useCase UpdatePriceRuleUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePriceRuleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/courts/{courtId}/price-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем ruleId из URL
	ruleIDStr := vars["ruleId"]
	ruleID, err := strconv.ParseInt(ruleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	// Парсим тело запроса
	var req UpdatePriceRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(courtID, ruleID))
	if err != nil {
		// Обработка ошибок use case
		var conflictErr *updatePriceRule.ConflictError

		switch {
		case errors.Is(err, updatePriceRule.ErrCourtNotFound):
			h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, updatePriceRule.ErrRuleNotFound):
			h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Rule not found: court_id=%d, rule_id=%d", courtID, ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, updatePriceRule.ErrHolidayNotFound):
			h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Holiday not found: court_id=%d, rule_id=%d", courtID, ruleID)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Rule conflict: court_id=%d, rule_id=%d, conflicting_rule_id=%d",
				courtID, ruleID, conflictErr.RuleID)
			handlers.RespondConflict(w, fmt.Sprintf(msgRuleConflictFmt,
				conflictErr.RuleType, conflictErr.RuleID, conflictErr.Window))

		case errors.Is(err, updatePriceRule.ErrRuleConflict):
			h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Rule conflict: court_id=%d, rule_id=%d", courtID, ruleID)
			handlers.RespondConflict(w, msgRuleConflict)

		case errors.Is(err, updatePriceRule.ErrInvalidInput):
			h.logger.Warn("PUT /courts/{id}/price-rules/{id} - Invalid rule: court_id=%d, rule_id=%d, error=%v",
				courtID, ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /courts/{id}/price-rules/{id} - Failed to update rule: court_id=%d, rule_id=%d, error=%v",
				courtID, ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /courts/{id}/price-rules/{id} - Rule updated: court_id=%d, rule_id=%d, type=%s",
		courtID, ruleID, result.Rule.RuleType)
	handlers.RespondJSON(w, http.StatusOK, response)
}
