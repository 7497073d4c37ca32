package delete_holiday

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/holidays"
)

const (
	msgInvalidHolidayID = "некорректный ID праздничной даты"
	msgHolidayNotFound  = "праздничная дата не найдена"
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

// Handle DELETE /api/v1/holidays/{holidayId}
// Ссылающиеся HOLIDAY-правила остаются в базе, но перестают срабатывать
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем holidayId из URL
	holidayIDStr := vars["holidayId"]
	holidayID, err := strconv.ParseInt(holidayIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	// Вызываем сервис
	if err := h.service.Delete(r.Context(), holidayID); err != nil {
		switch {
		case errors.Is(err, holidays.ErrHolidayNotFound):
			h.logger.Warn("DELETE /holidays/{id} - Holiday not found: holiday_id=%d", holidayID)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		default:
			h.logger.Error("DELETE /holidays/{id} - Failed to delete holiday: holiday_id=%d, error=%v", holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holidays/{id} - Holiday deleted: holiday_id=%d", holidayID)
	w.WriteHeader(http.StatusNoContent)
}
