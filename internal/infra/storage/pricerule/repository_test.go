package pricerule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func ruleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "court_id", "rule_type", "rule_date", "day_of_week", "holiday_id",
		"start_time", "end_time", "price_cents", "created_at", "updated_at",
	})
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rule, err := domain.NewWeekdaysRule(1, types.TimeRange{Start: "10:00", End: "14:00"}, 8000)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO price_rules").
		WithArgs(int64(1), domain.RuleWeekdays, nil, nil, nil, "10:00", "14:00", int64(8000)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(42, now, now))

	created, err := repo.Create(context.Background(), rule)
	require.NoError(t, err)
	require.Equal(t, int64(42), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByCourtID(t *testing.T) {
	t.Run("возвращает правила корта по порядку", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		rows := ruleRows().
			AddRow(1, 1, "WEEKDAYS", nil, nil, nil, "10:00", "14:00", 8000, now, now).
			AddRow(2, 1, "SPECIFIC_DAY", nil, int16(6), nil, "14:00", "18:00", 9000, now, now)

		mock.ExpectQuery("SELECT (.+) FROM price_rules WHERE court_id = \\$1 ORDER BY id ASC").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		rules, err := repo.GetByCourtID(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		require.Equal(t, domain.RuleWeekdays, rules[0].Type)
		require.Equal(t, time.Saturday, *rules[1].DayOfWeek)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустой корт - пустой срез", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM price_rules").
			WithArgs(int64(5)).
			WillReturnRows(ruleRows())

		rules, err := repo.GetByCourtID(context.Background(), 5)
		require.NoError(t, err)
		require.Empty(t, rules)
	})

	t.Run("строка с нарушенным инвариантом отклоняется", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		// WEEKDAYS-правило с заполненным day_of_week - повреждённые данные
		rows := ruleRows().
			AddRow(1, 1, "WEEKDAYS", nil, int16(2), nil, "10:00", "14:00", 8000, now, now)

		mock.ExpectQuery("SELECT (.+) FROM price_rules").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		_, err := repo.GetByCourtID(context.Background(), 1)
		require.ErrorIs(t, err, ErrScanRow)
	})
}

func TestRepositoryGetByID(t *testing.T) {
	t.Run("найдено", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		rows := ruleRows().
			AddRow(7, 1, "HOLIDAY", nil, nil, int64(3), "09:00", "22:00", 12000, now, now)

		mock.ExpectQuery("SELECT (.+) FROM price_rules WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		rule, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		require.Equal(t, domain.RuleHoliday, rule.Type)
		require.Equal(t, int64(3), *rule.HolidayID)
	})

	t.Run("не найдено", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM price_rules WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnRows(ruleRows())

		_, err := repo.GetByID(context.Background(), 404)
		require.ErrorIs(t, err, ErrRuleNotFound)
	})
}

func TestRepositoryUpdate(t *testing.T) {
	t.Run("успешное обновление", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rule, err := domain.NewWeekendsRule(1, types.TimeRange{Start: "08:00", End: "12:00"}, 9500)
		require.NoError(t, err)
		rule.ID = 7

		mock.ExpectExec("UPDATE price_rules SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(context.Background(), rule))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("чужое или отсутствующее правило", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rule, err := domain.NewWeekendsRule(1, types.TimeRange{Start: "08:00", End: "12:00"}, 9500)
		require.NoError(t, err)
		rule.ID = 404

		mock.ExpectExec("UPDATE price_rules SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.Update(context.Background(), rule), ErrRuleNotFound)
	})
}

func TestRepositoryDelete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM price_rules WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 7))
	})

	t.Run("не найдено", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM price_rules WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.Delete(context.Background(), 404), ErrRuleNotFound)
	})
}
