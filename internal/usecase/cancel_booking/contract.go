package cancel_booking

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTokenAndPin(ctx context.Context, token, pin string) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория парковочных слотов
type SlotRepository interface {
	IncrementAvailable(ctx context.Context, id int64) error
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
