package resolve_price

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// selectRule выбирает единственное применимое правило для слота или nil
//
// Правило применимо, если оно срабатывает в запрошенную дату И его окно
// целиком содержит слот [startMin, endMin) в минутах от полуночи.
// Частичное перекрытие не считается - слот должен помещаться в одно
// тарифное окно без остатка.
//
// Из применимых правил выбирается самое специфичное по рангу типа
// (SPECIFIC_DATE > HOLIDAY > SPECIFIC_DAY > WEEKDAYS/WEEKENDS > ALL_DAYS).
// Правила одного ранга не могут одновременно покрыть слот - это
// гарантирует проверка конфликтов при создании правил
func selectRule(
	rules []*domain.PriceRule,
	date time.Time,
	startMin, endMin int,
	holidays map[int64]time.Time,
) *domain.PriceRule {
	var best *domain.PriceRule

	for _, rule := range rules {
		if !rule.MatchesDate(date, holidays) {
			continue
		}
		if rule.StartTime.Minutes() > startMin || endMin > rule.EndTime.Minutes() {
			continue
		}
		if best == nil || rule.Type.Priority() > best.Type.Priority() {
			best = rule
		}
	}

	return best
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

// holidayDatesByID строит отображение ID праздника -> дата
func holidayDatesByID(holidays []*domain.HolidayDate) map[int64]time.Time {
	dates := make(map[int64]time.Time, len(holidays))
	for _, h := range holidays {
		dates[h.ID] = h.Date
	}
	return dates
}
