package auth

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// OrganizationCredentialStore выдает учетную запись организации по email
type OrganizationCredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Organization, error)
}

// AdministratorCredentialStore выдает учетную запись администратора по email
type AdministratorCredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Administrator, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
