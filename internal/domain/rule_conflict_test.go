package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func TestFindConflictingRule(t *testing.T) {
	window := types.TimeRange{Start: "10:00", End: "12:00"}
	// 2026-03-16 понедельник, 2026-03-14 суббота
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	noHolidays := map[int64]time.Time{}

	mkRule := func(id int64, build func() (*PriceRule, error)) *PriceRule {
		rule, err := build()
		require.NoError(t, err)
		rule.ID = id
		return rule
	}

	t.Run("непересекающиеся окна не конфликтуют", func(t *testing.T) {
		candidate := mkRule(0, func() (*PriceRule, error) { return NewAllDaysRule(1, window, 100) })
		existing := mkRule(10, func() (*PriceRule, error) {
			return NewAllDaysRule(1, types.TimeRange{Start: "12:00", End: "14:00"}, 200)
		})

		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{existing}, noHolidays))
	})

	t.Run("граничащие окна не конфликтуют", func(t *testing.T) {
		candidate := mkRule(0, func() (*PriceRule, error) {
			return NewWeekdaysRule(1, types.TimeRange{Start: "08:00", End: "10:00"}, 100)
		})
		existing := mkRule(10, func() (*PriceRule, error) { return NewWeekdaysRule(1, window, 200) })

		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{existing}, noHolidays))
	})

	t.Run("ALL_DAYS конфликтует с любым типом при пересечении окон", func(t *testing.T) {
		candidate := mkRule(0, func() (*PriceRule, error) { return NewAllDaysRule(1, window, 100) })

		others := []*PriceRule{
			mkRule(10, func() (*PriceRule, error) { return NewSpecificDateRule(1, monday, window, 200) }),
			mkRule(11, func() (*PriceRule, error) { return NewSpecificDayRule(1, time.Friday, window, 200) }),
			mkRule(12, func() (*PriceRule, error) { return NewWeekdaysRule(1, window, 200) }),
			mkRule(13, func() (*PriceRule, error) { return NewWeekendsRule(1, window, 200) }),
			mkRule(14, func() (*PriceRule, error) { return NewAllDaysRule(1, window, 200) }),
		}

		for _, other := range others {
			require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{other}, noHolidays),
				"ALL_DAYS должно конфликтовать с %s", other.Type)
		}
	})

	t.Run("WEEKDAYS и WEEKENDS не конфликтуют между собой", func(t *testing.T) {
		candidate := mkRule(0, func() (*PriceRule, error) { return NewWeekdaysRule(1, window, 100) })
		existing := mkRule(10, func() (*PriceRule, error) { return NewWeekendsRule(1, window, 200) })

		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{existing}, noHolidays))
		require.Nil(t, FindConflictingRule(existing, []*PriceRule{candidate}, noHolidays))
	})

	t.Run("SPECIFIC_DAY конфликтует с покрывающей группой дней", func(t *testing.T) {
		mondayRule := mkRule(0, func() (*PriceRule, error) { return NewSpecificDayRule(1, time.Monday, window, 100) })
		saturdayRule := mkRule(1, func() (*PriceRule, error) { return NewSpecificDayRule(1, time.Saturday, window, 100) })
		weekdays := mkRule(10, func() (*PriceRule, error) { return NewWeekdaysRule(1, window, 200) })
		weekends := mkRule(11, func() (*PriceRule, error) { return NewWeekendsRule(1, window, 200) })

		require.NotNil(t, FindConflictingRule(mondayRule, []*PriceRule{weekdays}, noHolidays))
		require.Nil(t, FindConflictingRule(mondayRule, []*PriceRule{weekends}, noHolidays))
		require.NotNil(t, FindConflictingRule(saturdayRule, []*PriceRule{weekends}, noHolidays))
		require.Nil(t, FindConflictingRule(saturdayRule, []*PriceRule{weekdays}, noHolidays))
	})

	t.Run("разные дни недели не конфликтуют", func(t *testing.T) {
		mondayRule := mkRule(0, func() (*PriceRule, error) { return NewSpecificDayRule(1, time.Monday, window, 100) })
		tuesdayRule := mkRule(10, func() (*PriceRule, error) { return NewSpecificDayRule(1, time.Tuesday, window, 200) })

		require.Nil(t, FindConflictingRule(mondayRule, []*PriceRule{tuesdayRule}, noHolidays))
	})

	t.Run("SPECIFIC_DATE конфликтует с правилами, покрывающими дату", func(t *testing.T) {
		candidate := mkRule(0, func() (*PriceRule, error) { return NewSpecificDateRule(1, monday, window, 100) })

		sameDate := mkRule(10, func() (*PriceRule, error) { return NewSpecificDateRule(1, monday, window, 200) })
		otherDate := mkRule(11, func() (*PriceRule, error) { return NewSpecificDateRule(1, saturday, window, 200) })
		mondayRule := mkRule(12, func() (*PriceRule, error) { return NewSpecificDayRule(1, time.Monday, window, 200) })
		weekends := mkRule(13, func() (*PriceRule, error) { return NewWeekendsRule(1, window, 200) })

		require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{sameDate}, noHolidays))
		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{otherDate}, noHolidays))
		require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{mondayRule}, noHolidays))
		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{weekends}, noHolidays))
	})

	t.Run("HOLIDAY с известной датой сверяется по дате", func(t *testing.T) {
		holidays := map[int64]time.Time{7: monday}

		candidate := mkRule(0, func() (*PriceRule, error) { return NewHolidayRule(1, 7, window, 100) })
		mondayDate := mkRule(10, func() (*PriceRule, error) { return NewSpecificDateRule(1, monday, window, 200) })
		saturdayDate := mkRule(11, func() (*PriceRule, error) { return NewSpecificDateRule(1, saturday, window, 200) })
		weekdays := mkRule(12, func() (*PriceRule, error) { return NewWeekdaysRule(1, window, 200) })
		weekends := mkRule(13, func() (*PriceRule, error) { return NewWeekendsRule(1, window, 200) })

		require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{mondayDate}, holidays))
		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{saturdayDate}, holidays))
		require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{weekdays}, holidays))
		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{weekends}, holidays))
	})

	t.Run("HOLIDAY с неизвестной датой трактуется консервативно", func(t *testing.T) {
		// Дата праздника неизвестна - любой день возможен, считаем конфликтом
		candidate := mkRule(0, func() (*PriceRule, error) { return NewHolidayRule(1, 99, window, 100) })
		weekends := mkRule(10, func() (*PriceRule, error) { return NewWeekendsRule(1, window, 200) })

		require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{weekends}, noHolidays))
	})

	t.Run("два HOLIDAY-правила на один праздник конфликтуют", func(t *testing.T) {
		candidate := mkRule(0, func() (*PriceRule, error) { return NewHolidayRule(1, 7, window, 100) })
		existing := mkRule(10, func() (*PriceRule, error) { return NewHolidayRule(1, 7, window, 200) })

		require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{existing}, noHolidays))
	})

	t.Run("HOLIDAY-правила на праздники в разные даты не конфликтуют", func(t *testing.T) {
		holidays := map[int64]time.Time{7: monday, 8: saturday}

		candidate := mkRule(0, func() (*PriceRule, error) { return NewHolidayRule(1, 7, window, 100) })
		existing := mkRule(10, func() (*PriceRule, error) { return NewHolidayRule(1, 8, window, 200) })

		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{existing}, holidays))

		// Та же пара без известных дат - консервативно конфликт
		require.NotNil(t, FindConflictingRule(candidate, []*PriceRule{existing}, noHolidays))
	})

	t.Run("правило с ID кандидата пропускается при обновлении", func(t *testing.T) {
		candidate := mkRule(10, func() (*PriceRule, error) { return NewAllDaysRule(1, window, 100) })
		same := mkRule(10, func() (*PriceRule, error) { return NewAllDaysRule(1, window, 200) })
		other := mkRule(11, func() (*PriceRule, error) { return NewAllDaysRule(1, window, 300) })

		require.Nil(t, FindConflictingRule(candidate, []*PriceRule{same}, noHolidays))
		conflict := FindConflictingRule(candidate, []*PriceRule{same, other}, noHolidays)
		require.NotNil(t, conflict)
		require.Equal(t, int64(11), conflict.ID)
	})

	t.Run("возвращается первое конфликтующее правило", func(t *testing.T) {
		candidate := mkRule(0, func() (*PriceRule, error) { return NewAllDaysRule(1, window, 100) })
		first := mkRule(10, func() (*PriceRule, error) { return NewWeekdaysRule(1, window, 200) })
		second := mkRule(11, func() (*PriceRule, error) { return NewWeekendsRule(1, window, 300) })

		conflict := FindConflictingRule(candidate, []*PriceRule{first, second}, noHolidays)
		require.NotNil(t, conflict)
		require.Equal(t, int64(10), conflict.ID)
	})
}
