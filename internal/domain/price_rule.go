package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// RuleType determines which calendar days a price rule applies to
type RuleType string

const (
	RuleSpecificDate RuleType = "SPECIFIC_DATE"
	RuleSpecificDay  RuleType = "SPECIFIC_DAY"
	RuleWeekdays     RuleType = "WEEKDAYS"
	RuleWeekends     RuleType = "WEEKENDS"
	RuleAllDays      RuleType = "ALL_DAYS"
	RuleHoliday      RuleType = "HOLIDAY"
)

// IsValid returns true for a known rule type
func (t RuleType) IsValid() bool {
	switch t {
	case RuleSpecificDate, RuleSpecificDay, RuleWeekdays, RuleWeekends, RuleAllDays, RuleHoliday:
		return true
	}
	return false
}

// Priority returns the specificity rank of the rule type
// Единый порядок для разрешения цены: чем выше ранг, тем специфичнее правило
// SPECIFIC_DATE > HOLIDAY > SPECIFIC_DAY > WEEKDAYS/WEEKENDS > ALL_DAYS
func (t RuleType) Priority() int {
	switch t {
	case RuleSpecificDate:
		return 5
	case RuleHoliday:
		return 4
	case RuleSpecificDay:
		return 3
	case RuleWeekdays, RuleWeekends:
		return 2
	case RuleAllDays:
		return 1
	default:
		return 0
	}
}

// PriceRule represents a pricing window for a court
// Ровно одно из полей {Date, DayOfWeek, HolidayID} заполнено - какое именно,
// определяется типом правила; конструкторы New*Rule гарантируют инвариант
type PriceRule struct {
	ID      int64
	CourtID int64
	Type    RuleType

	Date      *time.Time    // только для SPECIFIC_DATE
	DayOfWeek *time.Weekday // только для SPECIFIC_DAY (0 = воскресенье)
	HolidayID *int64        // только для HOLIDAY

	StartTime  types.TimeString
	EndTime    types.TimeString
	PriceCents int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the half-open [StartTime, EndTime) window of the rule
func (r *PriceRule) Window() types.TimeRange {
	return types.TimeRange{Start: r.StartTime, End: r.EndTime}
}

// newRule общая часть конструкторов: валидация окна и цены
func newRule(courtID int64, ruleType RuleType, window types.TimeRange, priceCents int64) (*PriceRule, error) {
	if window.IsZero() {
		return nil, fmt.Errorf("rule window %s is empty: start time must be before end time", window)
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price must be non-negative, got %d", priceCents)
	}
	return &PriceRule{
		CourtID:    courtID,
		Type:       ruleType,
		StartTime:  window.Start,
		EndTime:    window.End,
		PriceCents: priceCents,
	}, nil
}

// NewSpecificDateRule creates a rule that fires on exactly one calendar date
func NewSpecificDateRule(courtID int64, date time.Time, window types.TimeRange, priceCents int64) (*PriceRule, error) {
	r, err := newRule(courtID, RuleSpecificDate, window, priceCents)
	if err != nil {
		return nil, err
	}
	d := DateOnly(date)
	r.Date = &d
	return r, nil
}

// NewSpecificDayRule creates a rule that fires on one day of week
func NewSpecificDayRule(courtID int64, day time.Weekday, window types.TimeRange, priceCents int64) (*PriceRule, error) {
	if day < time.Sunday || day > time.Saturday {
		return nil, fmt.Errorf("day of week must be in range 0-6, got %d", day)
	}
	r, err := newRule(courtID, RuleSpecificDay, window, priceCents)
	if err != nil {
		return nil, err
	}
	r.DayOfWeek = &day
	return r, nil
}

// NewWeekdaysRule creates a rule that fires Monday through Friday
func NewWeekdaysRule(courtID int64, window types.TimeRange, priceCents int64) (*PriceRule, error) {
	return newRule(courtID, RuleWeekdays, window, priceCents)
}

// NewWeekendsRule creates a rule that fires on Saturday and Sunday
func NewWeekendsRule(courtID int64, window types.TimeRange, priceCents int64) (*PriceRule, error) {
	return newRule(courtID, RuleWeekends, window, priceCents)
}

// NewAllDaysRule creates a rule that fires every day
func NewAllDaysRule(courtID int64, window types.TimeRange, priceCents int64) (*PriceRule, error) {
	return newRule(courtID, RuleAllDays, window, priceCents)
}

// NewHolidayRule creates a rule that fires on the referenced holiday's date
func NewHolidayRule(courtID int64, holidayID int64, window types.TimeRange, priceCents int64) (*PriceRule, error) {
	if holidayID <= 0 {
		return nil, fmt.Errorf("holiday id must be positive, got %d", holidayID)
	}
	r, err := newRule(courtID, RuleHoliday, window, priceCents)
	if err != nil {
		return nil, err
	}
	r.HolidayID = &holidayID
	return r, nil
}

// Validate проверяет инвариант "ровно одно вариантное поле заполнено"
// Применяется к правилам, загруженным из хранилища, где конструкторы не работают
func (r *PriceRule) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("unknown rule type %q", r.Type)
	}
	if r.Window().IsZero() {
		return fmt.Errorf("rule window %s is empty", r.Window())
	}
	if r.PriceCents < 0 {
		return fmt.Errorf("price must be non-negative, got %d", r.PriceCents)
	}

	var wantDate, wantDay, wantHoliday bool
	switch r.Type {
	case RuleSpecificDate:
		wantDate = true
	case RuleSpecificDay:
		wantDay = true
	case RuleHoliday:
		wantHoliday = true
	}

	if (r.Date != nil) != wantDate {
		return fmt.Errorf("rule type %s: date field mismatch", r.Type)
	}
	if (r.DayOfWeek != nil) != wantDay {
		return fmt.Errorf("rule type %s: day of week field mismatch", r.Type)
	}
	if (r.HolidayID != nil) != wantHoliday {
		return fmt.Errorf("rule type %s: holiday reference mismatch", r.Type)
	}

	return nil
}

// MatchesDate reports whether the rule fires on the given calendar date
// holidays - даты праздников по ID; осиротевшее HOLIDAY-правило
// (праздник удалён) не срабатывает никогда
func (r *PriceRule) MatchesDate(date time.Time, holidays map[int64]time.Time) bool {
	switch r.Type {
	case RuleSpecificDate:
		return r.Date != nil && SameDay(*r.Date, date)
	case RuleSpecificDay:
		return r.DayOfWeek != nil && date.Weekday() == *r.DayOfWeek
	case RuleWeekdays:
		return isWeekday(date.Weekday())
	case RuleWeekends:
		return isWeekend(date.Weekday())
	case RuleAllDays:
		return true
	case RuleHoliday:
		if r.HolidayID == nil {
			return false
		}
		holidayDate, ok := holidays[*r.HolidayID]
		if !ok {
			return false
		}
		return SameDay(holidayDate, date)
	default:
		return false
	}
}

func isWeekday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
