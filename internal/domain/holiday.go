package domain

import "time"

// HolidayDate represents a named calendar date with special pricing
// Тарифные правила типа HOLIDAY ссылаются на него по ID; при удалении праздника
// такие правила становятся "осиротевшими" и перестают срабатывать
type HolidayDate struct {
	ID   int64
	Name string
	Date time.Time // только дата, время обнулено

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две отметки времени приходятся на один календарный день
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
