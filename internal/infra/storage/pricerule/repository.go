package pricerule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Repository репозиторий для работы с тарифными правилами кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифных правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var ruleColumns = []string{
	"id",
	"court_id",
	"rule_type",
	"rule_date",
	"day_of_week",
	"holiday_id",
	"start_time",
	"end_time",
	"price_cents",
	"created_at",
	"updated_at",
}

// Create создает новое тарифное правило
func (r *Repository) Create(ctx context.Context, rule *domain.PriceRule) (*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("price_rules").
		Columns(
			"court_id",
			"rule_type",
			"rule_date",
			"day_of_week",
			"holiday_id",
			"start_time",
			"end_time",
			"price_cents",
		).
		Values(
			rule.CourtID,
			rule.Type,
			rule.Date,
			weekdayToColumn(rule.DayOfWeek),
			rule.HolidayID,
			rule.StartTime.String(),
			rule.EndTime.String(),
			rule.PriceCents,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Update обновляет существующее тарифное правило целиком
func (r *Repository) Update(ctx context.Context, rule *domain.PriceRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("price_rules").
		Set("rule_type", rule.Type).
		Set("rule_date", rule.Date).
		Set("day_of_week", weekdayToColumn(rule.DayOfWeek)).
		Set("holiday_id", rule.HolidayID).
		Set("start_time", rule.StartTime.String()).
		Set("end_time", rule.EndTime.String()).
		Set("price_cents", rule.PriceCents).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID, "court_id": rule.CourtID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// GetByID получает тарифное правило по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("price_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// GetByCourtID получает все тарифные правила корта
// Внутри транзакции добавляется FOR UPDATE - проверка конфликтов при создании
// правила должна видеть стабильный набор строк до конца транзакции
func (r *Repository) GetByCourtID(ctx context.Context, courtID int64) ([]*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ruleColumns...).
		From("price_rules").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PriceRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCourtID - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCourtID - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Delete удаляет тарифное правило
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("price_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRule сканирует одну строку результата в domain.PriceRule
func scanRule(s scanner) (*domain.PriceRule, error) {
	var rule domain.PriceRule
	var ruleDate sql.NullTime
	var dayOfWeek sql.NullInt16
	var holidayID sql.NullInt64
	var startTime, endTime string
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&rule.ID,
		&rule.CourtID,
		&rule.Type,
		&ruleDate,
		&dayOfWeek,
		&holidayID,
		&startTime,
		&endTime,
		&rule.PriceCents,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if ruleDate.Valid {
		d := domain.DateOnly(ruleDate.Time)
		rule.Date = &d
	}
	if dayOfWeek.Valid {
		day := time.Weekday(dayOfWeek.Int16)
		rule.DayOfWeek = &day
	}
	if holidayID.Valid {
		id := holidayID.Int64
		rule.HolidayID = &id
	}

	rule.StartTime = types.TimeString(startTime)
	rule.EndTime = types.TimeString(endTime)
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	// Строка, нарушающая инвариант "ровно одно вариантное поле",
	// не должна молча попасть в разрешение цены
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	return &rule, nil
}

// weekdayToColumn конвертирует *time.Weekday в nullable-значение колонки
func weekdayToColumn(day *time.Weekday) interface{} {
	if day == nil {
		return nil
	}
	return int16(*day)
}
