package organization

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	"github.com/m04kA/PMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/PMS-ReservationService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки postgres при нарушении уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с организациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория организаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает организацию. Email уникален на уровне БД.
func (r *Repository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("organizations").
		Columns(
			"name",
			"org_type",
			"description",
			"total_slots_2w",
			"total_slots_4w",
			"address",
			"city",
			"state",
			"zip_code",
			"contact_person",
			"contact_phone",
			"email",
			"password_hash",
		).
		Values(
			org.Name,
			org.OrgType,
			org.Description,
			org.TotalSlots2W,
			org.TotalSlots4W,
			org.Address,
			org.City,
			org.State,
			org.ZipCode,
			org.ContactPerson,
			org.ContactPhone,
			org.Email,
			org.PasswordHash,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&org.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	org.CreatedAt = createdAt.Time
	org.UpdatedAt = updatedAt.Time

	return org, nil
}

// GetByID получает организацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail получает организацию по email.
// Используется как credential lookup при аутентификации.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Organization, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(organizationColumns...).
		From("organizations").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	org, err := scanOrganization(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan organization: %v", ErrScanRow, err)
	}

	return org, nil
}

// List получает все организации
func (r *Repository) List(ctx context.Context) ([]*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(organizationColumns...).
		From("organizations").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orgs := make([]*domain.Organization, 0)

	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		orgs = append(orgs, org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return orgs, nil
}

// organizationColumns колонки organizations в порядке сканирования scanOrganization
var organizationColumns = []string{
	"id",
	"name",
	"org_type",
	"description",
	"total_slots_2w",
	"total_slots_4w",
	"address",
	"city",
	"state",
	"zip_code",
	"contact_person",
	"contact_phone",
	"email",
	"password_hash",
	"created_at",
	"updated_at",
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrganization(row rowScanner) (*domain.Organization, error) {
	var (
		org       domain.Organization
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.OrgType,
		&org.Description,
		&org.TotalSlots2W,
		&org.TotalSlots4W,
		&org.Address,
		&org.City,
		&org.State,
		&org.ZipCode,
		&org.ContactPerson,
		&org.ContactPhone,
		&org.Email,
		&org.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	org.CreatedAt = createdAt.Time
	org.UpdatedAt = updatedAt.Time

	return &org, nil
}
