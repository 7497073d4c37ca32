package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// slotWithinBusinessHours проверяет, что слот целиком помещается в часы работы клуба
// Слот, конец которого выходит за границу суток, в часы работы не помещается
func slotWithinBusinessHours(hours types.TimeRange, start types.TimeString, durationMinutes int) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return start.Minutes() >= hours.Start.Minutes() && end.Minutes() <= hours.End.Minutes()
}

// slotInstants возвращает границы слота как моменты времени в день date
func slotInstants(date time.Time, start types.TimeString, durationMinutes int) (time.Time, time.Time) {
	startMin := start.Minutes()
	slotStart := time.Date(date.Year(), date.Month(), date.Day(),
		startMin/60, startMin%60, 0, 0, date.Location())
	return slotStart, slotStart.Add(time.Duration(durationMinutes) * time.Minute)
}

// filterFreeCourts возвращает корты без живых бронирований, пересекающих слот,
// сохраняя исходный порядок кортов
//
// Пересечение считается по полуинтервалам: бронирование, заканчивающееся ровно
// в начале слота (или начинающееся ровно в его конце), корт не блокирует.
// Отменённые и no-show бронирования не блокируют корт независимо от времени
func filterFreeCourts(
	courts []*domain.Court,
	bookings []*domain.Booking,
	slotStart, slotEnd time.Time,
) []*domain.Court {
	// Группируем бронирования по корту
	byCourtID := make(map[int64][]*domain.Booking, len(courts))
	for _, b := range bookings {
		byCourtID[b.CourtID] = append(byCourtID[b.CourtID], b)
	}

	free := make([]*domain.Court, 0, len(courts))
	for _, court := range courts {
		if courtIsBlocked(byCourtID[court.ID], slotStart, slotEnd) {
			continue
		}
		free = append(free, court)
	}

	return free
}

// courtIsBlocked проверяет, пересекает ли хотя бы одно живое бронирование слот
func courtIsBlocked(bookings []*domain.Booking, slotStart, slotEnd time.Time) bool {
	for _, b := range bookings {
		// Репозиторий уже отфильтровал неактивные статусы, но политика
		// "отменённые слот не занимают" проверяется и здесь
		if !b.IsLive() {
			continue
		}
		if b.Overlaps(slotStart, slotEnd) {
			return true
		}
	}
	return false
}
