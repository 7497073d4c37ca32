package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
)

const (
	msgInvalidClubID    = "некорректный ID клуба"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStartTime = "время начала обязательно"
	msgInvalidStartTime = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDuration  = "некорректная длительность слота"
	msgClubNotFound     = "клуб не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clubs/{clubId}/availability
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM),
// durationMinutes (required, positive integer)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем clubId из URL
	clubIDStr := vars["clubId"]
	clubID, err := strconv.ParseInt(clubIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clubs/{id}/availability - Invalid club ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClubID)
		return
	}

	// Извлекаем durationMinutes из query параметров
	durationStr := r.URL.Query().Get("durationMinutes")
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /clubs/{id}/availability - Invalid duration: %q", durationStr)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Дату и время валидирует use case, чтобы ошибки полей были различимы
	useCaseReq := &getAvailability.Request{
		ClubID:          clubID,
		Date:            r.URL.Query().Get("date"),
		StartTime:       r.URL.Query().Get("startTime"),
		DurationMinutes: duration,
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailability.ErrClubNotFound):
			h.logger.Warn("GET /clubs/{id}/availability - Club not found: club_id=%d", clubID)
			handlers.RespondNotFound(w, msgClubNotFound)

		case errors.Is(err, getAvailability.ErrMissingDate):
			h.logger.Warn("GET /clubs/{id}/availability - Missing date: club_id=%d", clubID)
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, getAvailability.ErrInvalidDateFormat):
			h.logger.Warn("GET /clubs/{id}/availability - Invalid date format: club_id=%d", clubID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrMissingStartTime):
			h.logger.Warn("GET /clubs/{id}/availability - Missing start time: club_id=%d", clubID)
			handlers.RespondBadRequest(w, msgMissingStartTime)

		case errors.Is(err, getAvailability.ErrInvalidTimeFormat):
			h.logger.Warn("GET /clubs/{id}/availability - Invalid start time format: club_id=%d", clubID)
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, getAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /clubs/{id}/availability - Invalid duration: club_id=%d, duration=%d", clubID, duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /clubs/{id}/availability - Failed to get availability: club_id=%d, error=%v", clubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /clubs/{id}/availability - Availability retrieved: club_id=%d, date=%s, courts_count=%d",
		clubID, useCaseReq.Date, len(result.AvailableCourts))
	handlers.RespondJSON(w, http.StatusOK, response)
}
