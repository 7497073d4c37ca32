package create_holiday

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/holidays"
	"github.com/m04kA/SMC-CourtService/internal/service/holidays/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHoliday     = "некорректные параметры праздничной даты"
)

type Handler struct {
	service HolidaysService
	logger  Logger
}

func NewHandler(service HolidaysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Парсим тело запроса
	var req models.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, holidays.ErrInvalidInput):
			h.logger.Warn("POST /holidays - Invalid holiday: name=%q, date=%q, error=%v", req.Name, req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidHoliday)

		default:
			h.logger.Error("POST /holidays - Failed to create holiday: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holidays - Holiday created: id=%d, name=%q, date=%s", result.ID, result.Name, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
