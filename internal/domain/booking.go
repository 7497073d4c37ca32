package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusPaid      BookingStatus = "paid"
	StatusReserved  BookingStatus = "reserved"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a court booking as a half-open [StartTime, EndTime) interval
type Booking struct {
	ID        int64
	CourtID   int64
	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLive returns true if the booking still occupies its slot
// Отменённые и no-show бронирования слот не занимают
func (b *Booking) IsLive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// Overlaps reports whether the booking intersects the half-open [start, end) interval
// Граничащие интервалы (EndTime == start) пересечением не считаются,
// поэтому бронирования могут стоять вплотную друг к другу
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}

// CourtBookingsFilter фильтр для выборки бронирований по набору кортов
type CourtBookingsFilter struct {
	CourtIDs        []int64        // Обязательный параметр
	Date            *time.Time     // Календарная дата (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
