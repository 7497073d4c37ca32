package models

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// RuleView тарифное правило в представлении для отображения
// Для HOLIDAY-правил подставляется имя праздника; если праздник удалён,
// правило помечается как осиротевшее - оно хранится, но не срабатывает
type RuleView struct {
	ID         int64   `json:"id"`
	CourtID    int64   `json:"courtId"`
	RuleType   string  `json:"ruleType"`
	Date       *string `json:"date,omitempty"`
	DayOfWeek  *int    `json:"dayOfWeek,omitempty"`
	HolidayID  *int64  `json:"holidayId,omitempty"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	PriceCents int64   `json:"priceCents"`

	HolidayName    *string `json:"holidayName,omitempty"`    // Имя праздника для HOLIDAY-правил
	HolidayDeleted bool    `json:"holidayDeleted,omitempty"` // true, если праздник был удалён
}

// RuleListResponse список правил корта
type RuleListResponse struct {
	CourtID int64      `json:"courtId"`
	Rules   []RuleView `json:"rules"`
}

// FromDomainRule конвертирует доменное правило в представление
// holidays - найденные праздники по ID; отсутствие записи для HOLIDAY-правила
// означает удалённый праздник
func FromDomainRule(r *domain.PriceRule, holidays map[int64]*domain.HolidayDate) RuleView {
	view := RuleView{
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
		view.Date = &d
	}
	if r.DayOfWeek != nil {
		day := int(*r.DayOfWeek)
		view.DayOfWeek = &day
	}

	if r.HolidayID != nil {
		if holiday, ok := holidays[*r.HolidayID]; ok {
			view.HolidayName = &holiday.Name
		} else {
			view.HolidayDeleted = true
		}
	}

	return view
}
