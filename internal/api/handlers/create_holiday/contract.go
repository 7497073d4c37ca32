package create_holiday

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/holidays/models"
)

type HolidaysService interface {
	Create(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
