package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса доступности кортов клуба
// Дата и время приходят строками из query-параметров; usecase валидирует их
// и возвращает различимые ошибки для каждого поля
type Request struct {
	ClubID          int64  // ID клуба
	Date            string // Дата в формате YYYY-MM-DD
	StartTime       string // Время начала в формате HH:MM
	DurationMinutes int    // Длительность слота в минутах
}

// Response модель ответа со списком свободных кортов
// Пустой список - валидный результат, отличимый от ошибки
type Response struct {
	ClubID          int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	AvailableCourts []AvailableCourt // В порядке кортов клуба
}

// AvailableCourt свободный корт с рассчитанной ценой слота
type AvailableCourt struct {
	ID                int64
	Name              string
	Slug              string
	Type              string
	Surface           string
	Indoor            bool
	SportType         string
	DefaultPriceCents int64
	PriceCents        int64 // Итоговая цена запрошенного слота
}
