package holidays

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-CourtService/internal/service/holidays/models"
)

// Service сервис для управления справочником праздничных дат
type Service struct {
	holidayRepo HolidayRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса праздничных дат
func NewService(holidayRepo HolidayRepository, logger Logger) *Service {
	return &Service{
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// Create создает праздничную дату
func (s *Service) Create(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayView, error) {
	s.logger.Info("Create: creating holiday name=%q date=%s", req.Name, req.Date)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxHolidayNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxHolidayNameLength)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	holiday := &domain.HolidayDate{
		Name: name,
		Date: domain.DateOnly(date),
	}

	created, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		s.logger.Error("Create: failed to create holiday name=%q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created holiday id=%d", created.ID)
	view := models.FromDomainHoliday(created)
	return &view, nil
}

// List получает все праздничные даты, отсортированные по дате
func (s *Service) List(ctx context.Context) (*models.HolidayListResponse, error) {
	s.logger.Info("List: fetching holidays")

	holidays, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.HolidayListResponse{
		Holidays: make([]models.HolidayView, 0, len(holidays)),
	}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, models.FromDomainHoliday(h))
	}

	s.logger.Info("List: fetched %d holidays", len(resp.Holidays))
	return resp, nil
}

// Delete удаляет праздничную дату
// Ссылающиеся на неё HOLIDAY-правила остаются, но перестают срабатывать
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting holiday id=%d", id)

	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("Delete: holiday id=%d not found", id)
			return ErrHolidayNotFound
		}
		s.logger.Error("Delete: failed to delete holiday id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted holiday id=%d", id)
	return nil
}
