package holidays

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// HolidayRepository интерфейс репозитория праздничных дат
type HolidayRepository interface {
	Create(ctx context.Context, holiday *domain.HolidayDate) (*domain.HolidayDate, error)
	GetAll(ctx context.Context) ([]*domain.HolidayDate, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
