package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	clubRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/club"
	resolvePrice "github.com/m04kA/SMC-CourtService/internal/usecase/resolve_price"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// UseCase use case расчёта доступности кортов клуба на слот
// Чистое вычисление над снимком кортов и бронирований: usecase ничего
// не резервирует и не даёт гарантий от гонок при последующем создании
// бронирования - это забота транзакционного слоя бронирования
type UseCase struct {
	clubRepo      ClubRepository
	courtRepo     CourtRepository
	bookingRepo   BookingRepository
	priceResolver PriceResolver
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clubRepo ClubRepository,
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	priceResolver PriceResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		clubRepo:      clubRepo,
		courtRepo:     courtRepo,
		bookingRepo:   bookingRepo,
		priceResolver: priceResolver,
		logger:        logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: club=%d, date=%s, start=%s, duration=%d",
		req.ClubID, req.Date, req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	date, start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		ClubID:          req.ClubID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		AvailableCourts: []AvailableCourt{},
	}

	// 2. Получаем клуб и его часы работы
	club, err := uc.clubRepo.GetByID(ctx, req.ClubID)
	if err != nil {
		if errors.Is(err, clubRepo.ErrClubNotFound) {
			uc.logger.Warn("GetAvailability: club id=%d not found", req.ClubID)
			return nil, ErrClubNotFound
		}
		uc.logger.Error("GetAvailability: failed to get club id=%d: %v", req.ClubID, err)
		return nil, fmt.Errorf("%w: failed to get club: %v", ErrInternal, err)
	}

	// 3. Слот за пределами часов работы - пустая выдача, не ошибка
	hours := club.BusinessHours()
	if !slotWithinBusinessHours(hours, start, req.DurationMinutes) {
		uc.logger.Info("GetAvailability: slot %s+%dmin outside business hours %s for club=%d",
			start, req.DurationMinutes, hours, req.ClubID)
		return resp, nil
	}

	// 4. Загружаем бронируемые корты клуба
	courts, err := uc.courtRepo.GetByClubID(ctx, req.ClubID, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get courts for club=%d: %v", req.ClubID, err)
		return nil, fmt.Errorf("%w: failed to get courts: %v", ErrInternal, err)
	}

	if len(courts) == 0 {
		uc.logger.Info("GetAvailability: club=%d has no bookable courts", req.ClubID)
		return resp, nil
	}

	// 5. Загружаем живые бронирования кортов на запрошенную дату
	courtIDs := make([]int64, len(courts))
	for i, c := range courts {
		courtIDs[i] = c.ID
	}

	filter := domain.CourtBookingsFilter{
		CourtIDs:        courtIDs,
		Date:            &date,
		IncludeInactive: false, // Отменённые и no-show слот не занимают
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Исключаем корты с пересекающимися бронированиями
	slotStart, slotEnd := slotInstants(date, start, req.DurationMinutes)
	freeCourts := filterFreeCourts(courts, bookings, slotStart, slotEnd)

	// 7. Считаем цену слота для каждого свободного корта
	// Сбой расчёта цены не выкидывает корт из выдачи - подставляется
	// ставка корта по умолчанию, масштабированная на длительность
	for _, court := range freeCourts {
		resp.AvailableCourts = append(resp.AvailableCourts, AvailableCourt{
			ID:                court.ID,
			Name:              court.Name,
			Slug:              court.Slug,
			Type:              court.Type,
			Surface:           court.Surface,
			Indoor:            court.Indoor,
			SportType:         court.SportType,
			DefaultPriceCents: court.DefaultPriceCents,
			PriceCents:        uc.resolveCourtPrice(ctx, court, req, date, start),
		})
	}

	uc.logger.Info("GetAvailability: club=%d date=%s start=%s: %d of %d courts available",
		req.ClubID, req.Date, start, len(resp.AvailableCourts), len(courts))

	return resp, nil
}

// resolveCourtPrice запрашивает цену слота у резолвера с откатом на ставку
// по умолчанию при любой его ошибке
func (uc *UseCase) resolveCourtPrice(
	ctx context.Context,
	court *domain.Court,
	req *Request,
	date time.Time,
	start types.TimeString,
) int64 {
	result, err := uc.priceResolver.Execute(ctx, &resolvePrice.Request{
		CourtID:         court.ID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		uc.logger.Warn("GetAvailability: price resolution failed for court=%d, using default price: %v",
			court.ID, err)
		return domain.ProrateHourlyPrice(court.DefaultPriceCents, req.DurationMinutes)
	}

	return result.PriceCents
}
