package resolve_price

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// PriceSource указывает, откуда взялась цена
type PriceSource string

const (
	// PriceSourceRule цена определена тарифным правилом
	PriceSourceRule PriceSource = "rule"
	// PriceSourceDefault цена по умолчанию (ни одно правило не покрыло слот целиком)
	PriceSourceDefault PriceSource = "default"
)

// Request модель запроса на расчёт цены слота
type Request struct {
	CourtID         int64            // ID корта
	Date            time.Time        // Календарная дата слота
	StartTime       types.TimeString // Время начала слота (нормализованное HH:MM)
	DurationMinutes int              // Длительность слота в минутах
}

// Response модель ответа с рассчитанной ценой
type Response struct {
	CourtID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	PriceCents      int64       // Итоговая цена слота в минорных единицах
	Source          PriceSource // Правило или ставка корта по умолчанию
	RuleID          *int64      // ID сработавшего правила (nil для цены по умолчанию)
}
