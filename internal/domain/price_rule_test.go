package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func mustRange(t *testing.T, start, end string) types.TimeRange {
	t.Helper()
	r, err := types.NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func TestRuleTypePriority(t *testing.T) {
	// SPECIFIC_DATE > HOLIDAY > SPECIFIC_DAY > WEEKDAYS/WEEKENDS > ALL_DAYS
	require.Greater(t, RuleSpecificDate.Priority(), RuleHoliday.Priority())
	require.Greater(t, RuleHoliday.Priority(), RuleSpecificDay.Priority())
	require.Greater(t, RuleSpecificDay.Priority(), RuleWeekdays.Priority())
	require.Equal(t, RuleWeekdays.Priority(), RuleWeekends.Priority())
	require.Greater(t, RuleWeekends.Priority(), RuleAllDays.Priority())
	require.Equal(t, 0, RuleType("UNKNOWN").Priority())
}

func TestRuleConstructors(t *testing.T) {
	window := types.TimeRange{Start: "10:00", End: "12:00"}

	t.Run("SPECIFIC_DATE отбрасывает время из даты", func(t *testing.T) {
		rule, err := NewSpecificDateRule(1, time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC), window, 5000)
		require.NoError(t, err)
		require.Equal(t, RuleSpecificDate, rule.Type)
		require.NotNil(t, rule.Date)
		require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *rule.Date)
		require.NoError(t, rule.Validate())
	})

	t.Run("SPECIFIC_DAY принимает только 0-6", func(t *testing.T) {
		rule, err := NewSpecificDayRule(1, time.Saturday, window, 5000)
		require.NoError(t, err)
		require.Equal(t, time.Saturday, *rule.DayOfWeek)

		_, err = NewSpecificDayRule(1, time.Weekday(7), window, 5000)
		require.Error(t, err)
	})

	t.Run("HOLIDAY требует положительный ID праздника", func(t *testing.T) {
		rule, err := NewHolidayRule(1, 42, window, 5000)
		require.NoError(t, err)
		require.Equal(t, int64(42), *rule.HolidayID)

		_, err = NewHolidayRule(1, 0, window, 5000)
		require.Error(t, err)
	})

	t.Run("окно нулевой длины отклоняется", func(t *testing.T) {
		_, err := NewAllDaysRule(1, types.TimeRange{Start: "10:00", End: "10:00"}, 5000)
		require.Error(t, err)
	})

	t.Run("перевёрнутое окно отклоняется", func(t *testing.T) {
		_, err := NewWeekdaysRule(1, types.TimeRange{Start: "12:00", End: "10:00"}, 5000)
		require.Error(t, err)
	})

	t.Run("отрицательная цена отклоняется", func(t *testing.T) {
		_, err := NewWeekendsRule(1, window, -1)
		require.Error(t, err)
	})

	t.Run("нулевая цена допустима", func(t *testing.T) {
		_, err := NewWeekendsRule(1, window, 0)
		require.NoError(t, err)
	})
}

func TestPriceRuleValidate(t *testing.T) {
	window := types.TimeRange{Start: "10:00", End: "12:00"}
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	day := time.Monday
	holidayID := int64(7)

	t.Run("лишнее вариантное поле отклоняется", func(t *testing.T) {
		rule := &PriceRule{
			CourtID:    1,
			Type:       RuleWeekdays,
			Date:       &date,
			StartTime:  window.Start,
			EndTime:    window.End,
			PriceCents: 100,
		}
		require.Error(t, rule.Validate())
	})

	t.Run("отсутствующее вариантное поле отклоняется", func(t *testing.T) {
		rule := &PriceRule{
			CourtID:    1,
			Type:       RuleSpecificDay,
			StartTime:  window.Start,
			EndTime:    window.End,
			PriceCents: 100,
		}
		require.Error(t, rule.Validate())
	})

	t.Run("неизвестный тип отклоняется", func(t *testing.T) {
		rule := &PriceRule{
			CourtID:    1,
			Type:       RuleType("SOMETIMES"),
			StartTime:  window.Start,
			EndTime:    window.End,
			PriceCents: 100,
		}
		require.Error(t, rule.Validate())
	})

	t.Run("корректные правила проходят", func(t *testing.T) {
		valid := []*PriceRule{
			{Type: RuleSpecificDate, Date: &date, StartTime: "10:00", EndTime: "12:00", PriceCents: 1},
			{Type: RuleSpecificDay, DayOfWeek: &day, StartTime: "10:00", EndTime: "12:00", PriceCents: 1},
			{Type: RuleHoliday, HolidayID: &holidayID, StartTime: "10:00", EndTime: "12:00", PriceCents: 1},
			{Type: RuleWeekdays, StartTime: "10:00", EndTime: "12:00", PriceCents: 1},
			{Type: RuleWeekends, StartTime: "10:00", EndTime: "12:00", PriceCents: 1},
			{Type: RuleAllDays, StartTime: "10:00", EndTime: "12:00", PriceCents: 1},
		}
		for _, rule := range valid {
			require.NoError(t, rule.Validate(), "type %s", rule.Type)
		}
	})
}

func TestPriceRuleMatchesDate(t *testing.T) {
	window := mustRange(t, "10:00", "12:00")
	// 2026-03-14 суббота, 2026-03-16 понедельник
	saturday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	noHolidays := map[int64]time.Time{}

	t.Run("SPECIFIC_DATE срабатывает только в свою дату", func(t *testing.T) {
		rule, err := NewSpecificDateRule(1, monday, window, 100)
		require.NoError(t, err)
		require.True(t, rule.MatchesDate(monday, noHolidays))
		require.False(t, rule.MatchesDate(saturday, noHolidays))
	})

	t.Run("SPECIFIC_DAY срабатывает по дню недели", func(t *testing.T) {
		rule, err := NewSpecificDayRule(1, time.Monday, window, 100)
		require.NoError(t, err)
		require.True(t, rule.MatchesDate(monday, noHolidays))
		require.False(t, rule.MatchesDate(saturday, noHolidays))
	})

	t.Run("WEEKDAYS и WEEKENDS не пересекаются", func(t *testing.T) {
		weekdays, err := NewWeekdaysRule(1, window, 100)
		require.NoError(t, err)
		weekends, err := NewWeekendsRule(1, window, 100)
		require.NoError(t, err)

		require.True(t, weekdays.MatchesDate(monday, noHolidays))
		require.False(t, weekdays.MatchesDate(saturday, noHolidays))
		require.True(t, weekends.MatchesDate(saturday, noHolidays))
		require.False(t, weekends.MatchesDate(monday, noHolidays))
	})

	t.Run("ALL_DAYS срабатывает всегда", func(t *testing.T) {
		rule, err := NewAllDaysRule(1, window, 100)
		require.NoError(t, err)
		require.True(t, rule.MatchesDate(monday, noHolidays))
		require.True(t, rule.MatchesDate(saturday, noHolidays))
	})

	t.Run("HOLIDAY срабатывает в дату праздника", func(t *testing.T) {
		rule, err := NewHolidayRule(1, 7, window, 100)
		require.NoError(t, err)

		holidays := map[int64]time.Time{7: monday}
		require.True(t, rule.MatchesDate(monday, holidays))
		require.False(t, rule.MatchesDate(saturday, holidays))
	})

	t.Run("осиротевшее HOLIDAY-правило не срабатывает никогда", func(t *testing.T) {
		rule, err := NewHolidayRule(1, 7, window, 100)
		require.NoError(t, err)

		// Праздник удалён - его нет в выборке
		require.False(t, rule.MatchesDate(monday, noHolidays))
		require.False(t, rule.MatchesDate(saturday, noHolidays))
	})
}
