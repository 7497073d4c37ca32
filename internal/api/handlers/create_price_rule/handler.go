package create_price_rule

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	createPriceRule "github.com/m04kA/SMC-CourtService/internal/usecase/create_price_rule"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRule        = "некорректные параметры правила"
	msgCourtNotFound      = "корт не найден"
	msgHolidayNotFound    = "праздничная дата не найдена"
	msgRuleConflict       = "правило пересекается с существующим правилом"
	// msgRuleConflictFmt называет тип и окно конфликтующего правила,
	// чтобы менеджер мог найти его в списке без повторных запросов
	msgRuleConflictFmt = "правило пересекается с существующим правилом %s (id=%d, окно %s)"
)

type Handler struct {
	useCase CreatePriceRuleUseCase
	logger  Logger
}

func NewHandler(useCase CreatePriceRuleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/courts/{courtId}/price-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /courts/{id}/price-rules - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Парсим тело запроса
	var req CreatePriceRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /courts/{id}/price-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(courtID))
	if err != nil {
		// Обработка ошибок use case
		var conflictErr *createPriceRule.ConflictError

		switch {
		case errors.Is(err, createPriceRule.ErrCourtNotFound):
			h.logger.Warn("POST /courts/{id}/price-rules - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createPriceRule.ErrHolidayNotFound):
			h.logger.Warn("POST /courts/{id}/price-rules - Holiday not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /courts/{id}/price-rules - Rule conflict: court_id=%d, conflicting_rule_id=%d",
				courtID, conflictErr.RuleID)
			handlers.RespondConflict(w, fmt.Sprintf(msgRuleConflictFmt,
				conflictErr.RuleType, conflictErr.RuleID, conflictErr.Window))

		case errors.Is(err, createPriceRule.ErrRuleConflict):
			h.logger.Warn("POST /courts/{id}/price-rules - Rule conflict: court_id=%d", courtID)
			handlers.RespondConflict(w, msgRuleConflict)

		case errors.Is(err, createPriceRule.ErrInvalidInput):
			h.logger.Warn("POST /courts/{id}/price-rules - Invalid rule: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /courts/{id}/price-rules - Failed to create rule: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /courts/{id}/price-rules - Rule created: court_id=%d, rule_id=%d, type=%s",
		courtID, result.Rule.ID, result.Rule.RuleType)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
