package domain

// ProrateHourlyPrice scales an hourly rate to the requested duration
// Ставка по умолчанию у корта почасовая; цена слота масштабируется линейно
// как hourlyCents * durationMinutes / 60 с округлением half-up до целой
// минорной единицы (50.5 цента -> 51)
func ProrateHourlyPrice(hourlyCents int64, durationMinutes int) int64 {
	if durationMinutes <= 0 {
		return 0
	}
	return (hourlyCents*int64(durationMinutes) + 30) / 60
}
