package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с кортами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var courtColumns = []string{
	"id",
	"club_id",
	"name",
	"slug",
	"type",
	"surface",
	"indoor",
	"sport_type",
	"default_price_cents",
	"is_published",
	"is_active",
	"created_at",
	"updated_at",
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	return court, nil
}

// GetByClubID получает корты клуба в стабильном порядке (по ID)
// При onlyBookable = true возвращаются только опубликованные активные корты
func (r *Repository) GetByClubID(ctx context.Context, clubID int64, onlyBookable bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("id ASC")

	if onlyBookable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_published": true, "is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClubID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClubID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByClubID - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClubID - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanCourt сканирует одну строку результата в domain.Court
func scanCourt(s scanner) (*domain.Court, error) {
	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&court.ID,
		&court.ClubID,
		&court.Name,
		&court.Slug,
		&court.Type,
		&court.Surface,
		&court.Indoor,
		&court.SportType,
		&court.DefaultPriceCents,
		&court.IsPublished,
		&court.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}
