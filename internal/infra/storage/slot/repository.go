package slot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	"github.com/m04kA/PMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/PMS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с парковочными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый парковочный слот
func (r *Repository) Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	features, err := json.Marshal(slot.Features)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal features: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("parking_slots").
		Columns(
			"organization_id",
			"name",
			"slot_type",
			"total_slots",
			"available_slots",
			"price",
			"features",
			"location",
			"distance",
			"address",
		).
		Values(
			slot.OrganizationID,
			slot.Name,
			slot.SlotType,
			slot.TotalSlots,
			slot.AvailableSlots,
			slot.Price,
			features,
			slot.Location,
			slot.Distance,
			slot.Address,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// GetByID получает парковочный слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("parking_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %w", ErrScanRow, err)
	}

	return slot, nil
}

// DecrementAvailable атомарно уменьшает available_slots на 1.
// Декремент условный: выполняется только при available_slots > 0, поэтому
// счётчик никогда не уходит ниже нуля. Проигрыш гонки (0 затронутых строк)
// возвращается как ErrNoCapacity — это же покрывает исчезнувший слот.
func (r *Repository) DecrementAvailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_slots").
		Set("available_slots", squirrel.Expr("available_slots - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"available_slots": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNoCapacity
	}

	return nil
}

// IncrementAvailable атомарно увеличивает available_slots на 1.
// Симметричен DecrementAvailable: выполняется только при
// available_slots < total_slots, счётчик никогда не превышает потолок.
func (r *Repository) IncrementAvailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_slots").
		Set("available_slots", squirrel.Expr("available_slots + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("available_slots < total_slots")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCapacityFull
	}

	return nil
}

// List получает все слоты с денормализованными данными организации
func (r *Repository) List(ctx context.Context) ([]*domain.SlotWithOrganization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.organization_id",
		"s.name",
		"s.slot_type",
		"s.total_slots",
		"s.available_slots",
		"s.price",
		"s.features",
		"s.location",
		"s.distance",
		"s.address",
		"s.created_at",
		"s.updated_at",
		"o.name AS organization_name",
		"o.city AS organization_city",
		"o.address AS organization_address",
	).
		From("parking_slots s").
		Join("organizations o ON o.id = s.organization_id").
		OrderBy("s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.SlotWithOrganization, 0)

	for rows.Next() {
		var (
			s         domain.SlotWithOrganization
			features  []byte
			createdAt sql.NullTime
			updatedAt sql.NullTime
		)

		err := rows.Scan(
			&s.ID,
			&s.OrganizationID,
			&s.Name,
			&s.SlotType,
			&s.TotalSlots,
			&s.AvailableSlots,
			&s.Price,
			&features,
			&s.Location,
			&s.Distance,
			&s.Address,
			&createdAt,
			&updatedAt,
			&s.OrganizationName,
			&s.OrganizationCity,
			&s.OrganizationAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		if err := json.Unmarshal(features, &s.Features); err != nil {
			return nil, fmt.Errorf("%w: List - unmarshal features: %w", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// ListByOrganization получает все слоты организации
func (r *Repository) ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("parking_slots").
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.ParkingSlot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOrganization - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// SumAvailableByOrganization суммирует available_slots по всем слотам организации
func (r *Repository) SumAvailableByOrganization(ctx context.Context, organizationID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(available_slots), 0)").
		From("parking_slots").
		Where(squirrel.Eq{"organization_id": organizationID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumAvailableByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumAvailableByOrganization - scan total: %w", ErrScanRow, err)
	}

	return total, nil
}

// slotColumns колонки parking_slots в порядке сканирования scanSlot
var slotColumns = []string{
	"id",
	"organization_id",
	"name",
	"slot_type",
	"total_slots",
	"available_slots",
	"price",
	"features",
	"location",
	"distance",
	"address",
	"created_at",
	"updated_at",
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.ParkingSlot, error) {
	var (
		slot      domain.ParkingSlot
		features  []byte
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&slot.ID,
		&slot.OrganizationID,
		&slot.Name,
		&slot.SlotType,
		&slot.TotalSlots,
		&slot.AvailableSlots,
		&slot.Price,
		&features,
		&slot.Location,
		&slot.Distance,
		&slot.Address,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(features, &slot.Features); err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
