package create_booking

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// SlotRepository интерфейс репозитория парковочных слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSlot, error)
	DecrementAvailable(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	TokenExists(ctx context.Context, token string) (bool, error)
}

// CredentialGenerator интерфейс генератора пары токен/PIN
type CredentialGenerator interface {
	Generate() (token string, pin string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
