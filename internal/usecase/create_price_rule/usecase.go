package create_price_rule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	holidayRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/holiday"
)

// UseCase use case создания тарифного правила
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции,
// чтобы параллельное создание правил не обошло проверку
type UseCase struct {
	courtRepo   CourtRepository
	ruleRepo    PriceRuleRepository
	holidayRepo HolidayRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	ruleRepo PriceRuleRepository,
	holidayRepo HolidayRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		ruleRepo:    ruleRepo,
		holidayRepo: holidayRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания тарифного правила
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePriceRule: court=%d, type=%s, window=%s-%s, price=%d",
		req.CourtID, req.RuleType, req.StartTime, req.EndTime, req.PriceCents)

	// 1. Валидация и сборка доменного правила
	candidate, err := buildRule(req)
	if err != nil {
		uc.logger.Warn("CreatePriceRule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreatePriceRule: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreatePriceRule: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Для HOLIDAY-правила праздник должен существовать на момент создания
	if candidate.HolidayID != nil {
		if _, err := uc.holidayRepo.GetByID(ctx, *candidate.HolidayID); err != nil {
			if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
				uc.logger.Warn("CreatePriceRule: holiday id=%d not found", *candidate.HolidayID)
				return nil, ErrHolidayNotFound
			}
			uc.logger.Error("CreatePriceRule: failed to get holiday id=%d: %v", *candidate.HolidayID, err)
			return nil, fmt.Errorf("%w: failed to get holiday: %v", ErrInternal, err)
		}
	}

	var created *domain.PriceRule

	// 4. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.ruleRepo.GetByCourtID(txCtx, req.CourtID)
		if err != nil {
			uc.logger.Error("CreatePriceRule: failed to get existing rules: %v", err)
			return fmt.Errorf("%w: failed to get existing rules: %v", ErrInternal, err)
		}

		holidayDates, err := uc.loadHolidayDates(txCtx, append(existing, candidate))
		if err != nil {
			uc.logger.Error("CreatePriceRule: failed to get holidays: %v", err)
			return fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}

		if conflict := domain.FindConflictingRule(candidate, existing, holidayDates); conflict != nil {
			uc.logger.Warn("CreatePriceRule: conflict with %s rule id=%d window=%s",
				conflict.Type, conflict.ID, conflict.Window())
			return &ConflictError{
				RuleID:   conflict.ID,
				RuleType: conflict.Type,
				Window:   conflict.Window(),
			}
		}

		created, err = uc.ruleRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreatePriceRule: failed to create rule: %v", err)
			return fmt.Errorf("%w: failed to create rule: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePriceRule: created rule id=%d for court=%d", created.ID, created.CourtID)

	return &Response{Rule: FromDomainRule(created)}, nil
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

	dates := make(map[int64]time.Time, len(holidays))
	for _, h := range holidays {
		dates[h.ID] = h.Date
	}

	return dates, nil
}
