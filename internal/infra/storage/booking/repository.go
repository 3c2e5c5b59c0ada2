package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	"github.com/m04kA/PMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/PMS-ReservationService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки postgres при нарушении уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с журналом бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись бронирования.
// created_at присваивается сервером БД (NOW()), поэтому возвращается через RETURNING.
// Вызывается строго внутри транзакции вместе с декрементом инвентаря —
// журнал и счётчик коммитятся как единое целое.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_id",
			"customer_name",
			"phone_number",
			"email",
			"vehicle_type",
			"vehicle_number",
			"vehicle_brand",
			"start_datetime",
			"end_datetime",
			"total_cost",
			"token",
			"pin",
			"status",
		).
		Values(
			b.SlotID,
			b.CustomerName,
			b.PhoneNumber,
			b.Email,
			b.VehicleType,
			b.VehicleNumber,
			b.VehicleBrand,
			b.StartDatetime,
			b.EndDatetime,
			b.TotalCost,
			b.Token,
			b.Pin,
			b.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateToken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// TokenExists проверяет наличие токена в журнале
func (r *Repository) TokenExists(ctx context.Context, token string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: TokenExists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: TokenExists - scan row: %w", ErrScanRow, err)
	}

	return true, nil
}

// GetByTokenAndPin получает бронирование по паре токен/PIN
func (r *Repository) GetByTokenAndPin(ctx context.Context, token, pin string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Eq{"pin": pin}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTokenAndPin - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTokenAndPin - scan booking: %w", ErrScanRow, err)
	}

	return b, nil
}

// ListByOrganization получает бронирования по слотам организации
func (r *Repository) ListByOrganization(ctx context.Context, filter domain.OrganizationBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(prefixedBookingColumns...).
		From("bookings b").
		Join("parking_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"s.organization_id": filter.OrganizationID})

	// Фильтрация по слоту (если указан)
	if filter.SlotID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.slot_id": *filter.SlotID})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": string(domain.StatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("b.start_datetime DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListAll получает все бронирования (административная выборка)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountActiveByOrganization считает подтвержденные бронирования организации,
// окно которых ещё не закончилось (end_datetime >= now)
func (r *Repository) CountActiveByOrganization(ctx context.Context, organizationID int64, now time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(b.id)").
		From("bookings b").
		Join("parking_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"s.organization_id": organizationID}).
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"b.end_datetime": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByOrganization - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// MonthlyRevenueByOrganization суммирует total_cost подтвержденных бронирований,
// начало которых попадает в указанный год/месяц
func (r *Repository) MonthlyRevenueByOrganization(ctx context.Context, organizationID int64, year int, month time.Month) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(b.total_cost), 0)").
		From("bookings b").
		Join("parking_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"s.organization_id": organizationID}).
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
		Where(squirrel.Expr("EXTRACT(YEAR FROM b.start_datetime) = ?", year)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM b.start_datetime) = ?", int(month))).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MonthlyRevenueByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: MonthlyRevenueByOrganization - scan revenue: %w", ErrScanRow, err)
	}

	return revenue, nil
}

// Cancel переводит подтвержденное бронирование в статус cancelled.
// Условный апдейт: 0 затронутых строк означает, что бронирование
// уже отменено (или исчезло) — возвращается ErrCannotCancel.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// bookingColumns колонки bookings в порядке сканирования scanBooking
var bookingColumns = []string{
	"id",
	"slot_id",
	"customer_name",
	"phone_number",
	"email",
	"vehicle_type",
	"vehicle_number",
	"vehicle_brand",
	"start_datetime",
	"end_datetime",
	"total_cost",
	"token",
	"pin",
	"status",
	"cancelled_at",
	"created_at",
}

var prefixedBookingColumns = []string{
	"b.id",
	"b.slot_id",
	"b.customer_name",
	"b.phone_number",
	"b.email",
	"b.vehicle_type",
	"b.vehicle_number",
	"b.vehicle_brand",
	"b.start_datetime",
	"b.end_datetime",
	"b.total_cost",
	"b.token",
	"b.pin",
	"b.status",
	"b.cancelled_at",
	"b.created_at",
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		createdAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.SlotID,
		&b.CustomerName,
		&b.PhoneNumber,
		&b.Email,
		&b.VehicleType,
		&b.VehicleNumber,
		&b.VehicleBrand,
		&b.StartDatetime,
		&b.EndDatetime,
		&b.TotalCost,
		&b.Token,
		&b.Pin,
		&b.Status,
		&b.CancelledAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
