package create_price_rule

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модель запроса на создание тарифного правила
// Ровно одно из полей {Date, DayOfWeek, HolidayID} должно быть заполнено
// в соответствии с типом правила
type Request struct {
	CourtID    int64
	RuleType   string  // SPECIFIC_DATE | SPECIFIC_DAY | WEEKDAYS | WEEKENDS | ALL_DAYS | HOLIDAY
	Date       *string // YYYY-MM-DD, только для SPECIFIC_DATE
	DayOfWeek  *int    // 0-6, воскресенье = 0, только для SPECIFIC_DAY
	HolidayID  *int64  // только для HOLIDAY
	StartTime  string  // HH:MM
	EndTime    string  // HH:MM
	PriceCents int64
}

// Response модель ответа с созданным правилом
type Response struct {
	Rule Rule
}

// Rule представление тарифного правила для вызывающей стороны
type Rule struct {
	ID         int64
	CourtID    int64
	RuleType   string
	Date       *string
	DayOfWeek  *int
	HolidayID  *int64
	StartTime  string
	EndTime    string
	PriceCents int64
}

// FromDomainRule конвертирует доменное правило в модель ответа
func FromDomainRule(r *domain.PriceRule) Rule {
	rule := Rule{
		ID:         r.ID,
		CourtID:    r.CourtID,
		RuleType:   string(r.Type),
		HolidayID:  r.HolidayID,
		StartTime:  r.StartTime.String(),
		EndTime:    r.EndTime.String(),
		PriceCents: r.PriceCents,
	}

	if r.Date != nil {
		d := r.Date.Format(domain.DateFormat)
		rule.Date = &d
	}
	if r.DayOfWeek != nil {
		day := int(*r.DayOfWeek)
		rule.DayOfWeek = &day
	}

	return rule
}

// parseRuleDate парсит дату правила формата YYYY-MM-DD
func parseRuleDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
