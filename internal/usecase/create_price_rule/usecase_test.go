package create_price_rule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	holidayRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	court, ok := f.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return court, nil
}

type fakeRuleRepo struct {
	rules  []*domain.PriceRule
	nextID int64
}

func (f *fakeRuleRepo) GetByCourtID(_ context.Context, courtID int64) ([]*domain.PriceRule, error) {
	out := make([]*domain.PriceRule, 0, len(f.rules))
	for _, r := range f.rules {
		if r.CourtID == courtID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRuleRepo) Create(_ context.Context, rule *domain.PriceRule) (*domain.PriceRule, error) {
	f.nextID++
	created := *rule
	created.ID = f.nextID
	f.rules = append(f.rules, &created)
	return &created, nil
}

type fakeHolidayRepo struct {
	holidays map[int64]*domain.HolidayDate
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, id int64) (*domain.HolidayDate, error) {
	h, ok := f.holidays[id]
	if !ok {
		return nil, holidayRepo.ErrHolidayNotFound
	}
	return h, nil
}

func (f *fakeHolidayRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.HolidayDate, error) {
	out := make([]*domain.HolidayDate, 0, len(ids))
	for _, id := range ids {
		if h, ok := f.holidays[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

// fakeTxManager выполняет колбэк без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestCreatePriceRule(t *testing.T) {
	ctx := context.Background()
	court := &domain.Court{ID: 1, ClubID: 1, Name: "Корт 1", DefaultPriceCents: 6000}

	baseRequest := func() *Request {
		return &Request{
			CourtID:    1,
			RuleType:   "WEEKDAYS",
			StartTime:  "10:00",
			EndTime:    "14:00",
			PriceCents: 8000,
		}
	}

	newUseCase := func(existing []*domain.PriceRule, holidays map[int64]*domain.HolidayDate) (*UseCase, *fakeRuleRepo, *fakeTxManager) {
		ruleRepo := &fakeRuleRepo{rules: existing, nextID: 100}
		txMgr := &fakeTxManager{}
		uc := NewUseCase(
			&fakeCourtRepo{courts: map[int64]*domain.Court{1: court}},
			ruleRepo,
			&fakeHolidayRepo{holidays: holidays},
			txMgr,
			noopLogger{},
		)
		return uc, ruleRepo, txMgr
	}

	t.Run("создание без конфликтов", func(t *testing.T) {
		uc, ruleRepo, txMgr := newUseCase(nil, nil)

		resp, err := uc.Execute(ctx, baseRequest())
		require.NoError(t, err)
		require.Equal(t, int64(101), resp.Rule.ID)
		require.Equal(t, "WEEKDAYS", resp.Rule.RuleType)
		require.Equal(t, "10:00", resp.Rule.StartTime)
		require.Equal(t, int64(8000), resp.Rule.PriceCents)
		require.Len(t, ruleRepo.rules, 1)
		// Проверка конфликтов и вставка идут в сериализуемой транзакции
		require.Equal(t, 1, txMgr.calls)
	})

	t.Run("время нормализуется при создании", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)

		req := baseRequest()
		req.StartTime = "9:00"
		req.EndTime = "12:30"
		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Equal(t, "09:00", resp.Rule.StartTime)
		require.Equal(t, "12:30", resp.Rule.EndTime)
	})

	t.Run("конфликт с существующим правилом отклоняется", func(t *testing.T) {
		existing, err := domain.NewAllDaysRule(1, mustTimeRange(t, "12:00", "16:00"), 5000)
		require.NoError(t, err)
		existing.ID = 50

		uc, ruleRepo, _ := newUseCase([]*domain.PriceRule{existing}, nil)

		_, err = uc.Execute(ctx, baseRequest()) // 10:00-14:00 пересекает 12:00-16:00
		require.ErrorIs(t, err, ErrRuleConflict)

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		require.Equal(t, int64(50), conflictErr.RuleID)
		require.Equal(t, domain.RuleAllDays, conflictErr.RuleType)

		// Существующие правила не изменились, новое не создано
		require.Len(t, ruleRepo.rules, 1)
	})

	t.Run("граничащее окно не конфликтует", func(t *testing.T) {
		existing, err := domain.NewWeekdaysRule(1, mustTimeRange(t, "14:00", "18:00"), 5000)
		require.NoError(t, err)
		existing.ID = 50

		uc, _, _ := newUseCase([]*domain.PriceRule{existing}, nil)

		_, err = uc.Execute(ctx, baseRequest()) // 10:00-14:00 встык к 14:00-18:00
		require.NoError(t, err)
	})

	t.Run("окно нулевой длины отклоняется", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)

		req := baseRequest()
		req.EndTime = req.StartTime
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("неизвестный тип правила отклоняется", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)

		req := baseRequest()
		req.RuleType = "SOMETIMES"
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("вариантное поле обязано соответствовать типу", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)

		req := baseRequest()
		req.RuleType = "SPECIFIC_DATE" // без даты
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)

		req = baseRequest()
		req.RuleType = "SPECIFIC_DAY"
		req.DayOfWeek = ptr.Ptr(9) // вне диапазона 0-6
		_, err = uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("корт не найден", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)

		req := baseRequest()
		req.CourtID = 404
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("HOLIDAY-правило требует существующий праздник", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)

		req := baseRequest()
		req.RuleType = "HOLIDAY"
		req.HolidayID = ptr.Ptr(int64(99))
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrHolidayNotFound)
	})

	t.Run("HOLIDAY-правило создаётся для существующего праздника", func(t *testing.T) {
		holidays := map[int64]*domain.HolidayDate{
			7: {ID: 7, Name: "Праздник", Date: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)},
		}
		uc, _, _ := newUseCase(nil, holidays)

		req := baseRequest()
		req.RuleType = "HOLIDAY"
		req.HolidayID = ptr.Ptr(int64(7))
		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Equal(t, "HOLIDAY", resp.Rule.RuleType)
		require.Equal(t, int64(7), *resp.Rule.HolidayID)
	})

	t.Run("повторная попытка после конфликта с другим окном проходит", func(t *testing.T) {
		existing, err := domain.NewWeekdaysRule(1, mustTimeRange(t, "10:00", "14:00"), 5000)
		require.NoError(t, err)
		existing.ID = 50

		uc, _, _ := newUseCase([]*domain.PriceRule{existing}, nil)

		req := baseRequest()
		_, err = uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrRuleConflict)

		req.StartTime = "14:00"
		req.EndTime = "18:00"
		_, err = uc.Execute(ctx, req)
		require.NoError(t, err)
	})
}

func mustTimeRange(t *testing.T, start, end string) types.TimeRange {
	t.Helper()
	r, err := types.NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}
