package list_holidays

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/holidays/models"
)

type HolidaysService interface {
	List(ctx context.Context) (*models.HolidayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
