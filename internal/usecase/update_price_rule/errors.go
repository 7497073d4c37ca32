package update_price_rule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrRuleNotFound возвращается, когда обновляемое правило не найдено у корта
	ErrRuleNotFound = errors.New("price rule not found")

	// ErrHolidayNotFound возвращается, когда праздник для HOLIDAY-правила не найден
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRuleConflict возвращается, когда обновлённое правило пересекается с другим
	// Существующие правила при этом не меняются
	ErrRuleConflict = errors.New("price rule conflicts with an existing rule")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// ConflictError несёт детали конфликтующего правила для сообщения пользователю
type ConflictError struct {
	RuleID   int64
	RuleType domain.RuleType
	Window   types.TimeRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("price rule conflicts with existing %s rule (id=%d, window %s)",
		e.RuleType, e.RuleID, e.Window)
}

// Unwrap позволяет проверять конфликт через errors.Is(err, ErrRuleConflict)
func (e *ConflictError) Unwrap() error {
	return ErrRuleConflict
}
