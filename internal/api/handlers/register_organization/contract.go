package register_organization

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/service/organizations/models"
)

type OrganizationService interface {
	Register(ctx context.Context, req *models.RegisterOrganizationRequest) (*models.OrganizationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
