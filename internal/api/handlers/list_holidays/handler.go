package list_holidays

import (
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
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

// Handle GET /api/v1/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /holidays - Failed to list holidays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /holidays - Holidays retrieved: count=%d", len(result.Holidays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
