package slot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestDecrementAvailable(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE parking_slots SET available_slots = available_slots - 1, updated_at = NOW\(\) WHERE id = \$1 AND available_slots > \$2`).
		WithArgs(int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DecrementAvailable(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementAvailable_NoCapacity(t *testing.T) {
	repo, mock := newMock(t)

	// 0 затронутых строк: счётчик на нуле или слот исчез
	mock.ExpectExec(`UPDATE parking_slots`).
		WithArgs(int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DecrementAvailable(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoCapacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementAvailable(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE parking_slots SET available_slots = available_slots \+ 1, updated_at = NOW\(\) WHERE id = \$1 AND available_slots < total_slots`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementAvailable(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementAvailable_CapacityFull(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE parking_slots`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementAvailable(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCapacityFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	rows := sqlmock.NewRows(slotColumns).
		AddRow(int64(5), int64(2), "Level B", "2W", 10, 7, 25.0,
			[]byte(`["covered","ev-charging"]`), "Basement", "1.2 km", "10 Main St", now, now)

	mock.ExpectQuery(`SELECT id, organization_id, name, slot_type, total_slots, available_slots, price, features, location, distance, address, created_at, updated_at FROM parking_slots WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	slot, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), slot.ID)
	assert.Equal(t, domain.VehicleClass2W, slot.SlotType)
	assert.Equal(t, 10, slot.TotalSlots)
	assert.Equal(t, 7, slot.AvailableSlots)
	assert.Equal(t, []string{"covered", "ev-charging"}, slot.Features)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM parking_slots WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(slotColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO parking_slots \(organization_id,name,slot_type,total_slots,available_slots,price,features,location,distance,address\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10\) RETURNING id, created_at, updated_at`).
		WithArgs(int64(2), "Level A", domain.VehicleClass4W, 20, 20, 50.0,
			[]byte(`["covered"]`), "Ground", "0.5 km", "1 Main St").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	created, err := repo.Create(context.Background(), &domain.ParkingSlot{
		OrganizationID: 2,
		Name:           "Level A",
		SlotType:       domain.VehicleClass4W,
		TotalSlots:     20,
		AvailableSlots: 20,
		Price:          50.0,
		Features:       []string{"covered"},
		Location:       "Ground",
		Distance:       "0.5 km",
		Address:        "1 Main St",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	columns := []string{
		"id", "organization_id", "name", "slot_type", "total_slots", "available_slots",
		"price", "features", "location", "distance", "address", "created_at", "updated_at",
		"organization_name", "organization_city", "organization_address",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(int64(1), int64(2), "Level A", "4W", 20, 15, 50.0,
			[]byte(`[]`), "Ground", "0.5 km", "1 Main St", now, now,
			"City Mall", "Pune", "MG Road")

	mock.ExpectQuery(`SELECT .+ FROM parking_slots s JOIN organizations o ON o\.id = s\.organization_id ORDER BY s\.id ASC`).
		WillReturnRows(rows)

	slots, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, "City Mall", slots[0].OrganizationName)
	assert.Equal(t, "Pune", slots[0].OrganizationCity)
	assert.Equal(t, "MG Road", slots[0].OrganizationAddress)
	assert.Empty(t, slots[0].Features)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumAvailableByOrganization(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(available_slots\), 0\) FROM parking_slots WHERE organization_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(42))

	total, err := repo.SumAvailableByOrganization(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
