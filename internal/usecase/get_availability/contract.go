package get_availability

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	resolvePrice "github.com/m04kA/SMC-CourtService/internal/usecase/resolve_price"
)

// ClubRepository интерфейс репозитория клубов
type ClubRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Club, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	// GetByClubID возвращает корты клуба в стабильном порядке
	GetByClubID(ctx context.Context, clubID int64, onlyBookable bool) ([]*domain.Court, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error)
}

// PriceResolver интерфейс расчёта цены слота
// Ошибки резолвера не фатальны для расчёта доступности - корт остаётся
// в выдаче с ценой по умолчанию
type PriceResolver interface {
	Execute(ctx context.Context, req *resolvePrice.Request) (*resolvePrice.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
