package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// validateRequest валидирует запрос и возвращает распарсенные дату и время
// Каждое поле отклоняется своей ошибкой, чтобы вызывающая сторона могла
// показать точное сообщение
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if req.ClubID <= 0 {
		return time.Time{}, "", fmt.Errorf("%w: clubID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return time.Time{}, "", ErrMissingDate
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, req.Date)
	}

	if req.StartTime == "" {
		return time.Time{}, "", ErrMissingStartTime
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, req.StartTime)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return time.Time{}, "", fmt.Errorf("%w: got %d", ErrInvalidDuration, req.DurationMinutes)
	}

	return date, start, nil
}
