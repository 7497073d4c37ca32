package club

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Repository репозиторий для работы с клубами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клубов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клуб по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Club, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"open_time",
		"close_time",
		"created_at",
		"updated_at",
	).
		From("clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var club domain.Club
	var openTime, closeTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&club.ID,
		&club.Name,
		&club.Slug,
		&openTime,
		&closeTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClubNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan club: %v", ErrScanRow, err)
	}

	// NULL в колонках часов работы означает часы по умолчанию
	if openTime.Valid {
		club.OpenTime = types.TimeString(openTime.String)
	}
	if closeTime.Valid {
		club.CloseTime = types.TimeString(closeTime.String)
	}
	club.CreatedAt = createdAt.Time
	club.UpdatedAt = updatedAt.Time

	return &club, nil
}
