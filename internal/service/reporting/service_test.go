package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeOrgRepo struct {
	org *domain.Organization
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	if f.org == nil || f.org.ID != id {
		return nil, orgRepo.ErrOrganizationNotFound
	}
	return f.org, nil
}

type fakeSlotRepo struct {
	available int
}

func (f *fakeSlotRepo) SumAvailableByOrganization(ctx context.Context, organizationID int64) (int, error) {
	return f.available, nil
}

type fakeBookingRepo struct {
	active   int
	revenue  float64
	gotNow   time.Time
	gotYear  int
	gotMonth time.Month
}

func (f *fakeBookingRepo) CountActiveByOrganization(ctx context.Context, organizationID int64, now time.Time) (int, error) {
	f.gotNow = now
	return f.active, nil
}

func (f *fakeBookingRepo) MonthlyRevenueByOrganization(ctx context.Context, organizationID int64, year int, month time.Month) (float64, error) {
	f.gotYear = year
	f.gotMonth = month
	return f.revenue, nil
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	orgs := &fakeOrgRepo{org: &domain.Organization{
		ID:           2,
		Name:         "City Mall",
		TotalSlots2W: 30,
		TotalSlots4W: 70,
	}}
	slots := &fakeSlotRepo{available: 64}
	bookings := &fakeBookingRepo{active: 12, revenue: 5400.50}

	svc := NewService(orgs, slots, bookings, fixedClock{now: now}, nopLogger{})

	d, err := svc.BuildDashboard(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), d.OrganizationID)
	assert.Equal(t, "City Mall", d.OrganizationName)
	assert.Equal(t, 100, d.TotalSlots)
	assert.Equal(t, 64, d.AvailableSlots)
	assert.Equal(t, 12, d.ActiveBookings)
	assert.Equal(t, 5400.50, d.MonthlyRevenue)

	// отчётный период — календарный месяц часов сервиса
	assert.Equal(t, now, bookings.gotNow)
	assert.Equal(t, 2025, bookings.gotYear)
	assert.Equal(t, time.October, bookings.gotMonth)
}

func TestBuildDashboard_OrganizationNotFound(t *testing.T) {
	svc := NewService(&fakeOrgRepo{}, &fakeSlotRepo{}, &fakeBookingRepo{}, fixedClock{}, nopLogger{})

	_, err := svc.BuildDashboard(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}
