package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default club business hours, applied when a club does not override them
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "22:00"
)

// Business validation constants
const (
	MinDurationMinutes   = 1
	MaxDurationMinutes   = 480 // 8 часов - максимальная длительность одного бронирования
	MaxHolidayNameLength = 200
)

// InactiveStatuses список статусов, при которых бронирование не занимает слот
// Используется при подсчёте доступности кортов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// LiveStatuses список статусов, при которых бронирование занимает слот
var LiveStatuses = []BookingStatus{
	StatusPending,
	StatusPaid,
	StatusReserved,
	StatusConfirmed,
	StatusCompleted,
}
