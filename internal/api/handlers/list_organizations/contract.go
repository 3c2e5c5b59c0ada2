package list_organizations

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/service/organizations/models"
)

type OrganizationService interface {
	List(ctx context.Context) (*models.OrganizationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
