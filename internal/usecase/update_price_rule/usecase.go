package update_price_rule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	holidayRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/holiday"
	ruleRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/pricerule"
)

// UseCase use case обновления тарифного правила
// Как и при создании, проверка конфликтов и запись идут в сериализуемой
// транзакции; правило сравнивается со всеми правилами корта, кроме себя
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

// Execute выполняет use case обновления тарифного правила
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdatePriceRule: court=%d, rule=%d, type=%s, window=%s-%s, price=%d",
		req.CourtID, req.RuleID, req.RuleType, req.StartTime, req.EndTime, req.PriceCents)

	// 1. Валидация и сборка доменного правила
	candidate, err := buildRule(req)
	if err != nil {
		uc.logger.Warn("UpdatePriceRule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("UpdatePriceRule: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("UpdatePriceRule: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Правило должно существовать и принадлежать корту
	existing, err := uc.ruleRepo.GetByID(ctx, req.RuleID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			uc.logger.Warn("UpdatePriceRule: rule id=%d not found", req.RuleID)
			return nil, ErrRuleNotFound
		}
		uc.logger.Error("UpdatePriceRule: failed to get rule id=%d: %v", req.RuleID, err)
		return nil, fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
	}
	if existing.CourtID != req.CourtID {
		uc.logger.Warn("UpdatePriceRule: rule id=%d belongs to court=%d, not court=%d",
			req.RuleID, existing.CourtID, req.CourtID)
		return nil, ErrRuleNotFound
	}

	// 4. Для HOLIDAY-правила праздник должен существовать
	if candidate.HolidayID != nil {
		if _, err := uc.holidayRepo.GetByID(ctx, *candidate.HolidayID); err != nil {
			if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
				uc.logger.Warn("UpdatePriceRule: holiday id=%d not found", *candidate.HolidayID)
				return nil, ErrHolidayNotFound
			}
			uc.logger.Error("UpdatePriceRule: failed to get holiday id=%d: %v", *candidate.HolidayID, err)
			return nil, fmt.Errorf("%w: failed to get holiday: %v", ErrInternal, err)
		}
	}

	// 5. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rules, err := uc.ruleRepo.GetByCourtID(txCtx, req.CourtID)
		if err != nil {
			uc.logger.Error("UpdatePriceRule: failed to get existing rules: %v", err)
			return fmt.Errorf("%w: failed to get existing rules: %v", ErrInternal, err)
		}

		holidayDates, err := uc.loadHolidayDates(txCtx, append(rules, candidate))
		if err != nil {
			uc.logger.Error("UpdatePriceRule: failed to get holidays: %v", err)
			return fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}

		// FindConflictingRule пропускает правило с ID кандидата
		if conflict := domain.FindConflictingRule(candidate, rules, holidayDates); conflict != nil {
			uc.logger.Warn("UpdatePriceRule: conflict with %s rule id=%d window=%s",
				conflict.Type, conflict.ID, conflict.Window())
			return &ConflictError{
				RuleID:   conflict.ID,
				RuleType: conflict.Type,
				Window:   conflict.Window(),
			}
		}

		if err := uc.ruleRepo.Update(txCtx, candidate); err != nil {
			if errors.Is(err, ruleRepo.ErrRuleNotFound) {
				return ErrRuleNotFound
			}
			uc.logger.Error("UpdatePriceRule: failed to update rule: %v", err)
			return fmt.Errorf("%w: failed to update rule: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdatePriceRule: updated rule id=%d for court=%d", candidate.ID, candidate.CourtID)

	return &Response{Rule: FromDomainRule(candidate)}, nil
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
