package admin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	"github.com/m04kA/PMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/PMS-ReservationService/pkg/psqlbuilder"
)

// Repository хранилище учетных записей администраторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает администратора по email (credential lookup)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"email",
		"password_hash",
		"created_at",
	).
		From("admins").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var (
		adm       domain.Administrator
		createdAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&adm.ID,
		&adm.Email,
		&adm.PasswordHash,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan administrator: %v", ErrScanRow, err)
	}

	adm.CreatedAt = createdAt.Time

	return &adm, nil
}
