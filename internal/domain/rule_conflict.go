package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// FindConflictingRule ищет среди существующих правил корта первое,
// которое может сработать в тот же календарный день, что и кандидат,
// с пересекающимся временным окном. Два таких правила сделали бы
// разрешение цены неоднозначным, поэтому создание отклоняется.
//
// Правило с тем же ID, что и кандидат, пропускается - это случай обновления.
// holidays - известные даты праздников по ID; для правил с неизвестной
// датой праздника совместимость трактуется консервативно (как конфликт).
func FindConflictingRule(candidate *PriceRule, existing []*PriceRule, holidays map[int64]time.Time) *PriceRule {
	for _, rule := range existing {
		if rule.ID != 0 && rule.ID == candidate.ID {
			continue
		}
		if !types.Overlap(candidate.StartTime, candidate.EndTime, rule.StartTime, rule.EndTime) {
			continue
		}
		if canMatchSameDay(candidate, rule, holidays) {
			return rule
		}
	}
	return nil
}

// canMatchSameDay проверяет, существует ли календарный день,
// в который могут сработать оба правила. Функция симметрична.
func canMatchSameDay(a, b *PriceRule, holidays map[int64]time.Time) bool {
	// ALL_DAYS срабатывает каждый день и совместимо с любым правилом
	if a.Type == RuleAllDays || b.Type == RuleAllDays {
		return true
	}

	// Нормализуем порядок по рангу типа, чтобы разобрать каждую пару один раз
	if a.Type.Priority() < b.Type.Priority() {
		a, b = b, a
	}

	switch a.Type {
	case RuleSpecificDate:
		return dateMatchesRule(*a.Date, b, holidays)

	case RuleHoliday:
		return holidayMatchesRule(a, b, holidays)

	case RuleSpecificDay:
		switch b.Type {
		case RuleSpecificDay:
			return *a.DayOfWeek == *b.DayOfWeek
		case RuleWeekdays:
			return isWeekday(*a.DayOfWeek)
		case RuleWeekends:
			return isWeekend(*a.DayOfWeek)
		}

	case RuleWeekdays:
		// WEEKDAYS и WEEKENDS покрывают непересекающиеся множества дней
		return b.Type == RuleWeekdays

	case RuleWeekends:
		return b.Type == RuleWeekends
	}

	// Неразобранная комбинация - консервативно считаем конфликтом,
	// чтобы не пропустить неоднозначное ценообразование
	return true
}

// dateMatchesRule проверяет, может ли правило b сработать в конкретную дату
func dateMatchesRule(date time.Time, b *PriceRule, holidays map[int64]time.Time) bool {
	switch b.Type {
	case RuleSpecificDate:
		return SameDay(date, *b.Date)
	case RuleSpecificDay:
		return date.Weekday() == *b.DayOfWeek
	case RuleWeekdays:
		return isWeekday(date.Weekday())
	case RuleWeekends:
		return isWeekend(date.Weekday())
	case RuleHoliday:
		holidayDate, ok := holidays[*b.HolidayID]
		if !ok {
			// Дата праздника неизвестна - консервативно конфликт
			return true
		}
		return SameDay(date, holidayDate)
	}
	return true
}

// holidayMatchesRule проверяет совместимость HOLIDAY-правила a с правилом b,
// ранг которого не выше (HOLIDAY, SPECIFIC_DAY, WEEKDAYS, WEEKENDS)
func holidayMatchesRule(a, b *PriceRule, holidays map[int64]time.Time) bool {
	if b.Type == RuleHoliday {
		if *a.HolidayID == *b.HolidayID {
			return true
		}
		aDate, aOK := holidays[*a.HolidayID]
		bDate, bOK := holidays[*b.HolidayID]
		if aOK && bOK {
			// Разные праздники могут приходиться на одну дату
			return SameDay(aDate, bDate)
		}
		return true
	}

	holidayDate, ok := holidays[*a.HolidayID]
	if !ok {
		return true
	}
	return dateMatchesRule(holidayDate, b, holidays)
}
