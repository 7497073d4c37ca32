package update_price_rule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	holidayRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/holiday"
	ruleStorage "github.com/m04kA/SMC-CourtService/internal/infra/storage/pricerule"
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
	rules   map[int64]*domain.PriceRule
	updated *domain.PriceRule
}

func (f *fakeRuleRepo) GetByID(_ context.Context, id int64) (*domain.PriceRule, error) {
	rule, ok := f.rules[id]
	if !ok {
		return nil, ruleStorage.ErrRuleNotFound
	}
	return rule, nil
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

func (f *fakeRuleRepo) Update(_ context.Context, rule *domain.PriceRule) error {
	if _, ok := f.rules[rule.ID]; !ok {
		return ruleStorage.ErrRuleNotFound
	}
	f.updated = rule
	f.rules[rule.ID] = rule
	return nil
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

func TestUpdatePriceRule(t *testing.T) {
	ctx := context.Background()
	court := &domain.Court{ID: 1, ClubID: 1, Name: "Корт 1", DefaultPriceCents: 6000}

	// Существующее правило, которое будем обновлять: WEEKDAYS 10:00-14:00
	newExisting := func(t *testing.T) *domain.PriceRule {
		rule, err := domain.NewWeekdaysRule(1, mustTimeRange(t, "10:00", "14:00"), 8000)
		require.NoError(t, err)
		rule.ID = 10
		return rule
	}

	baseRequest := func() *Request {
		return &Request{
			CourtID:    1,
			RuleID:     10,
			RuleType:   "WEEKDAYS",
			StartTime:  "10:00",
			EndTime:    "16:00",
			PriceCents: 9000,
		}
	}

	newUseCase := func(rules ...*domain.PriceRule) (*UseCase, *fakeRuleRepo, *fakeTxManager) {
		byID := make(map[int64]*domain.PriceRule, len(rules))
		for _, r := range rules {
			byID[r.ID] = r
		}
		ruleRepo := &fakeRuleRepo{rules: byID}
		txMgr := &fakeTxManager{}
		uc := NewUseCase(
			&fakeCourtRepo{courts: map[int64]*domain.Court{1: court}},
			ruleRepo,
			&fakeHolidayRepo{},
			txMgr,
			noopLogger{},
		)
		return uc, ruleRepo, txMgr
	}

	t.Run("обновление без конфликтов", func(t *testing.T) {
		uc, ruleRepo, txMgr := newUseCase(newExisting(t))

		resp, err := uc.Execute(ctx, baseRequest())
		require.NoError(t, err)
		require.Equal(t, int64(10), resp.Rule.ID)
		require.Equal(t, "16:00", resp.Rule.EndTime)
		require.Equal(t, int64(9000), resp.Rule.PriceCents)
		require.NotNil(t, ruleRepo.updated)
		require.Equal(t, 1, txMgr.calls)
	})

	t.Run("правило не сравнивается с самим собой", func(t *testing.T) {
		// Новое окно 12:00-18:00 пересекает старое окно того же правила,
		// но проверка конфликтов пропускает правило с ID кандидата
		uc, _, _ := newUseCase(newExisting(t))

		req := baseRequest()
		req.StartTime = "12:00"
		req.EndTime = "18:00"
		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Equal(t, "12:00", resp.Rule.StartTime)
	})

	t.Run("конфликт с чужим правилом отклоняется", func(t *testing.T) {
		other, err := domain.NewAllDaysRule(1, mustTimeRange(t, "15:00", "20:00"), 5000)
		require.NoError(t, err)
		other.ID = 20

		uc, ruleRepo, _ := newUseCase(newExisting(t), other)

		_, err = uc.Execute(ctx, baseRequest()) // 10:00-16:00 пересекает 15:00-20:00
		require.ErrorIs(t, err, ErrRuleConflict)

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		require.Equal(t, int64(20), conflictErr.RuleID)
		require.Nil(t, ruleRepo.updated)
	})

	t.Run("правило не найдено", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(ctx, baseRequest())
		require.ErrorIs(t, err, ErrRuleNotFound)
	})

	t.Run("чужой корт получает not found", func(t *testing.T) {
		foreign, err := domain.NewWeekdaysRule(2, mustTimeRange(t, "10:00", "14:00"), 8000)
		require.NoError(t, err)
		foreign.ID = 10

		uc, _, _ := newUseCase(foreign)

		_, err = uc.Execute(ctx, baseRequest()) // courtID=1, правило принадлежит корту 2
		require.ErrorIs(t, err, ErrRuleNotFound)
	})

	t.Run("корт не найден", func(t *testing.T) {
		uc, _, _ := newUseCase(newExisting(t))

		req := baseRequest()
		req.CourtID = 404
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("смена типа на HOLIDAY требует существующий праздник", func(t *testing.T) {
		uc, _, _ := newUseCase(newExisting(t))

		req := baseRequest()
		req.RuleType = "HOLIDAY"
		holidayID := int64(99)
		req.HolidayID = &holidayID
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrHolidayNotFound)
	})

	t.Run("невалидное окно отклоняется", func(t *testing.T) {
		uc, _, _ := newUseCase(newExisting(t))

		req := baseRequest()
		req.StartTime = "16:00"
		req.EndTime = "10:00"
		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func mustTimeRange(t *testing.T, start, end string) types.TimeRange {
	t.Helper()
	r, err := types.NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}
