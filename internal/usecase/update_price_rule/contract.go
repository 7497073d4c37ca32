package update_price_rule

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
	// GetByCourtID внутри транзакции блокирует правила корта (FOR UPDATE)
	GetByCourtID(ctx context.Context, courtID int64) ([]*domain.PriceRule, error)
	Update(ctx context.Context, rule *domain.PriceRule) error
}

// HolidayRepository интерфейс репозитория праздничных дат
type HolidayRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.HolidayDate, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.HolidayDate, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
