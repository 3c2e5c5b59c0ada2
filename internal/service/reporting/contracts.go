package reporting

import (
	"context"
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// OrganizationRepository интерфейс хранилища организаций
type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
}

// SlotRepository интерфейс хранилища парковочных слотов
type SlotRepository interface {
	SumAvailableByOrganization(ctx context.Context, organizationID int64) (int, error)
}

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	CountActiveByOrganization(ctx context.Context, organizationID int64, now time.Time) (int, error)
	MonthlyRevenueByOrganization(ctx context.Context, organizationID int64, year int, month time.Month) (float64, error)
}

// TimeProvider отдаёт текущее время; в тестах подменяется фиксированным
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
