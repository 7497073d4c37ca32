package pricerules

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// PriceRuleRepository интерфейс репозитория тарифных правил
type PriceRuleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PriceRule, error)
	GetByCourtID(ctx context.Context, courtID int64) ([]*domain.PriceRule, error)
	Delete(ctx context.Context, id int64) error
}

// HolidayRepository интерфейс репозитория праздничных дат
type HolidayRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.HolidayDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
