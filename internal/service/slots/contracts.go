package slots

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// SlotRepository интерфейс хранилища парковочных слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error)
	List(ctx context.Context) ([]*domain.SlotWithOrganization, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.ParkingSlot, error)
}

// OrganizationRepository интерфейс хранилища организаций
type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
