package organizations

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// OrganizationRepository интерфейс хранилища организаций
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
}

// SlotRepository интерфейс хранилища парковочных слотов
type SlotRepository interface {
	ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.ParkingSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
