package holiday

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с праздничными датами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория праздничных дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var holidayColumns = []string{
	"id",
	"name",
	"holiday_date",
	"created_at",
	"updated_at",
}

// Create создает новую праздничную дату
func (r *Repository) Create(ctx context.Context, holiday *domain.HolidayDate) (*domain.HolidayDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holiday_dates").
		Columns("name", "holiday_date").
		Values(holiday.Name, domain.DateOnly(holiday.Date)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&holiday.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	holiday.CreatedAt = createdAt.Time
	holiday.UpdatedAt = updatedAt.Time

	return holiday, nil
}

// GetByID получает праздничную дату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.HolidayDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holidayColumns...).
		From("holiday_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	holiday, err := scanHoliday(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan holiday: %v", ErrScanRow, err)
	}

	return holiday, nil
}

// GetByIDs получает праздничные даты по набору ID
// Отсутствующие ID молча пропускаются - так осиротевшие HOLIDAY-правила
// (праздник удалён) не ломают выборку
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.HolidayDate, error) {
	if len(ids) == 0 {
		return []*domain.HolidayDate{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holidayColumns...).
		From("holiday_dates").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// GetAll получает все праздничные даты в хронологическом порядке
func (r *Repository) GetAll(ctx context.Context) ([]*domain.HolidayDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holidayColumns...).
		From("holiday_dates").
		OrderBy("holiday_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Delete удаляет праздничную дату
// Ссылающиеся HOLIDAY-правила не каскадируются и становятся осиротевшими
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holiday_dates").
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
		return ErrHolidayNotFound
	}

	return nil
}

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanHoliday(s scanner) (*domain.HolidayDate, error) {
	var holiday domain.HolidayDate
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&holiday.ID,
		&holiday.Name,
		&holiday.Date,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	holiday.CreatedAt = createdAt.Time
	holiday.UpdatedAt = updatedAt.Time

	return &holiday, nil
}

func scanHolidays(rows *sql.Rows) ([]*domain.HolidayDate, error) {
	holidays := make([]*domain.HolidayDate, 0)

	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanHolidays - scan row: %v", ErrScanRow, err)
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}
