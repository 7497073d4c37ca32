package update_price_rule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// buildRule валидирует запрос и собирает доменное правило через конструктор
// соответствующего типа; ID переносится из запроса, чтобы проверка конфликтов
// не сравнивала правило с самим собой
func buildRule(req *Request) (*domain.PriceRule, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.RuleID <= 0 {
		return nil, fmt.Errorf("%w: ruleID must be positive", ErrInvalidInput)
	}

	ruleType := domain.RuleType(req.RuleType)
	if !ruleType.IsValid() {
		return nil, fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, req.RuleType)
	}

	if !types.IsValidTime(req.StartTime) {
		return nil, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.StartTime)
	}
	if !types.IsValidTime(req.EndTime) {
		return nil, fmt.Errorf("%w: invalid end time %q", ErrInvalidInput, req.EndTime)
	}

	window, err := types.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rule, err := buildTypedRule(req, ruleType, window)
	if err != nil {
		return nil, err
	}

	rule.ID = req.RuleID

	return rule, nil
}

// buildTypedRule вызывает конструктор, соответствующий типу правила
func buildTypedRule(req *Request, ruleType domain.RuleType, window types.TimeRange) (*domain.PriceRule, error) {
	switch ruleType {
	case domain.RuleSpecificDate:
		if req.Date == nil {
			return nil, fmt.Errorf("%w: date is required for %s rules", ErrInvalidInput, ruleType)
		}
		date, err := parseRuleDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, *req.Date)
		}
		return wrapBuildErr(domain.NewSpecificDateRule(req.CourtID, date, window, req.PriceCents))

	case domain.RuleSpecificDay:
		if req.DayOfWeek == nil {
			return nil, fmt.Errorf("%w: dayOfWeek is required for %s rules", ErrInvalidInput, ruleType)
		}
		return wrapBuildErr(domain.NewSpecificDayRule(req.CourtID, time.Weekday(*req.DayOfWeek), window, req.PriceCents))

	case domain.RuleWeekdays:
		return wrapBuildErr(domain.NewWeekdaysRule(req.CourtID, window, req.PriceCents))

	case domain.RuleWeekends:
		return wrapBuildErr(domain.NewWeekendsRule(req.CourtID, window, req.PriceCents))

	case domain.RuleAllDays:
		return wrapBuildErr(domain.NewAllDaysRule(req.CourtID, window, req.PriceCents))

	case domain.RuleHoliday:
		if req.HolidayID == nil {
			return nil, fmt.Errorf("%w: holidayId is required for %s rules", ErrInvalidInput, ruleType)
		}
		return wrapBuildErr(domain.NewHolidayRule(req.CourtID, *req.HolidayID, window, req.PriceCents))
	}

	return nil, fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, ruleType)
}

// wrapBuildErr оборачивает ошибки доменных конструкторов в ErrInvalidInput
func wrapBuildErr(rule *domain.PriceRule, err error) (*domain.PriceRule, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return rule, nil
}

// collectHolidayIDs возвращает ID праздников, на которые ссылаются правила
func collectHolidayIDs(rules []*domain.PriceRule) []int64 {
	ids := make([]int64, 0)
	seen := make(map[int64]bool)

	for _, rule := range rules {
		if rule.HolidayID == nil || seen[*rule.HolidayID] {
			continue
		}
		seen[*rule.HolidayID] = true
		ids = append(ids, *rule.HolidayID)
	}

	return ids
}
