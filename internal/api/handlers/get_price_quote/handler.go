package get_price_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	resolvePrice "github.com/m04kA/SMC-CourtService/internal/usecase/resolve_price"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

const (
	msgInvalidCourtID   = "некорректный ID корта"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStartTime = "время начала обязательно"
	msgInvalidStartTime = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDuration  = "некорректная длительность слота"
	msgCourtNotFound    = "корт не найден"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	useCase ResolvePriceUseCase
	logger  Logger
}

func NewHandler(useCase ResolvePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/price-quote
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM),
// durationMinutes (required, positive integer)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price-quote - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{id}/price-quote - Missing date: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем startTime из query параметров
	startTimeStr := r.URL.Query().Get("startTime")
	if startTimeStr == "" {
		h.logger.Warn("GET /courts/{id}/price-quote - Missing start time: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	// Извлекаем durationMinutes из query параметров
	durationStr := r.URL.Query().Get("durationMinutes")
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price-quote - Invalid duration: court_id=%d, value=%q", courtID, durationStr)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Формируем запрос к use case (с парсингом даты и времени)
	useCaseReq, err := ToUseCaseRequest(courtID, dateStr, startTimeStr, duration)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price-quote - Invalid date or time: court_id=%d, error=%v", courtID, err)
		if !types.IsValidTime(startTimeStr) {
			handlers.RespondBadRequest(w, msgInvalidStartTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, resolvePrice.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/price-quote - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, resolvePrice.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/price-quote - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /courts/{id}/price-quote - Failed to resolve price: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /courts/{id}/price-quote - Price resolved: court_id=%d, date=%s, price_cents=%d, source=%s",
		courtID, dateStr, result.PriceCents, result.Source)
	handlers.RespondJSON(w, http.StatusOK, response)
}
