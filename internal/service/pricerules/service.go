package pricerules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	ruleRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/pricerule"
	"github.com/m04kA/SMC-CourtService/internal/service/pricerules/models"
)

// Service сервис для чтения и удаления тарифных правил
// Создание и обновление идут через use cases с проверкой конфликтов
type Service struct {
	courtRepo   CourtRepository
	ruleRepo    PriceRuleRepository
	holidayRepo HolidayRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса тарифных правил
func NewService(
	courtRepo CourtRepository,
	ruleRepo PriceRuleRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *Service {
	return &Service{
		courtRepo:   courtRepo,
		ruleRepo:    ruleRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// ListByCourt получает правила корта с именами праздников для отображения
// Осиротевшие HOLIDAY-правила (праздник удалён) явно помечаются
func (s *Service) ListByCourt(ctx context.Context, courtID int64) (*models.RuleListResponse, error) {
	s.logger.Info("ListByCourt: fetching rules for court=%d", courtID)

	if courtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if _, err := s.courtRepo.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("ListByCourt: court id=%d not found", courtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("ListByCourt: failed to get court id=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	rules, err := s.ruleRepo.GetByCourtID(ctx, courtID)
	if err != nil {
		s.logger.Error("ListByCourt: repository error for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: ListByCourt - repository error: %v", ErrInternal, err)
	}

	holidays, err := s.loadHolidays(ctx, rules)
	if err != nil {
		s.logger.Error("ListByCourt: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: ListByCourt - failed to get holidays: %v", ErrInternal, err)
	}

	resp := &models.RuleListResponse{
		CourtID: courtID,
		Rules:   make([]models.RuleView, 0, len(rules)),
	}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, models.FromDomainRule(rule, holidays))
	}

	s.logger.Info("ListByCourt: fetched %d rules for court=%d", len(resp.Rules), courtID)
	return resp, nil
}

// Delete удаляет тарифное правило корта
func (s *Service) Delete(ctx context.Context, courtID, ruleID int64) error {
	s.logger.Info("Delete: deleting rule id=%d for court=%d", ruleID, courtID)

	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%d not found", ruleID)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: failed to get rule id=%d: %v", ruleID, err)
		return fmt.Errorf("%w: Delete - failed to get rule: %v", ErrInternal, err)
	}

	if rule.CourtID != courtID {
		s.logger.Warn("Delete: rule id=%d belongs to court=%d, not court=%d", ruleID, rule.CourtID, courtID)
		return ErrRuleNotFound
	}

	if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: failed to delete rule id=%d: %v", ruleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted rule id=%d", ruleID)
	return nil
}

// loadHolidays загружает праздники, на которые ссылаются правила
func (s *Service) loadHolidays(ctx context.Context, rules []*domain.PriceRule) (map[int64]*domain.HolidayDate, error) {
	ids := make([]int64, 0)
	seen := make(map[int64]bool)
	for _, rule := range rules {
		if rule.HolidayID == nil || seen[*rule.HolidayID] {
			continue
		}
		seen[*rule.HolidayID] = true
		ids = append(ids, *rule.HolidayID)
	}

	if len(ids) == 0 {
		return map[int64]*domain.HolidayDate{}, nil
	}

	holidays, err := s.holidayRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.HolidayDate, len(holidays))
	for _, h := range holidays {
		byID[h.ID] = h
	}

	return byID, nil
}
