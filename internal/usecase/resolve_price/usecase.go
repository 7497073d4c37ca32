package resolve_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// UseCase use case расчёта цены слота для корта
type UseCase struct {
	courtRepo   CourtRepository
	ruleRepo    PriceRuleRepository
	holidayRepo HolidayRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	ruleRepo PriceRuleRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		ruleRepo:    ruleRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// Execute выполняет use case расчёта цены
// Детерминирован: одинаковые вход и набор правил всегда дают одинаковую цену
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolvePrice: court=%d, date=%s, start=%s, duration=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolvePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт (нужна ставка по умолчанию)
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("ResolvePrice: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("ResolvePrice: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Загружаем тарифные правила корта
	rules, err := uc.ruleRepo.GetByCourtID(ctx, req.CourtID)
	if err != nil {
		uc.logger.Error("ResolvePrice: failed to get rules for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get price rules: %v", ErrInternal, err)
	}

	// 4. Подтягиваем даты праздников, на которые ссылаются правила
	// Удалённые праздники в выборку не попадают - такие правила не срабатывают
	holidayDates, err := uc.loadHolidayDates(ctx, rules)
	if err != nil {
		uc.logger.Error("ResolvePrice: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	// 5. Выбираем применимое правило
	startMin := req.StartTime.Minutes()
	endMin := startMin + req.DurationMinutes

	rule := selectRule(rules, req.Date, startMin, endMin, holidayDates)

	resp := &Response{
		CourtID:         req.CourtID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}

	if rule != nil {
		resp.PriceCents = rule.PriceCents
		resp.Source = PriceSourceRule
		resp.RuleID = &rule.ID
		uc.logger.Info("ResolvePrice: court=%d matched %s rule id=%d window=%s price=%d",
			req.CourtID, rule.Type, rule.ID, rule.Window(), rule.PriceCents)
		return resp, nil
	}

	// 6. Ни одно правило не покрыло слот - линейно масштабируем почасовую
	// ставку корта по умолчанию
	resp.PriceCents = domain.ProrateHourlyPrice(court.DefaultPriceCents, req.DurationMinutes)
	resp.Source = PriceSourceDefault
	uc.logger.Info("ResolvePrice: court=%d no matching rule, default hourly=%d prorated=%d",
		req.CourtID, court.DefaultPriceCents, resp.PriceCents)

	return resp, nil
}

// loadHolidayDates загружает даты праздников, на которые ссылаются правила
func (uc *UseCase) loadHolidayDates(ctx context.Context, rules []*domain.PriceRule) (map[int64]time.Time, error) {
	ids := collectHolidayIDs(rules)
	if len(ids) == 0 {
		return map[int64]time.Time{}, nil
	}

	holidays, err := uc.holidayRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return holidayDatesByID(holidays), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !types.IsValidTime(req.StartTime.String()) {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.StartTime)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	return nil
}
