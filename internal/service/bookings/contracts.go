package bookings

import (
	"context"
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	ListByOrganization(ctx context.Context, filter domain.OrganizationBookingsFilter) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
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
