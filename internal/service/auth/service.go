package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	adminRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/admin"
	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
)

// Service проверка учетных данных организаций и администраторов.
// Идентичность выясняется на каждый запрос по явным credential-хранилищам,
// без серверных сессий.
type Service struct {
	orgStore   OrganizationCredentialStore
	adminStore AdministratorCredentialStore
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	orgStore OrganizationCredentialStore,
	adminStore AdministratorCredentialStore,
	logger Logger,
) *Service {
	return &Service{
		orgStore:   orgStore,
		adminStore: adminStore,
		logger:     logger,
	}
}

// AuthenticateOrganization проверяет пару email/пароль организации
// и возвращает её ID
func (s *Service) AuthenticateOrganization(ctx context.Context, email, password string) (int64, error) {
	org, err := s.orgStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, orgRepo.ErrOrganizationNotFound) {
			s.logger.Warn("AuthenticateOrganization: unknown email %s", email)
			return 0, ErrInvalidCredentials
		}
		s.logger.Error("AuthenticateOrganization: credential lookup failed: %v", err)
		return 0, fmt.Errorf("%w: credential lookup failed: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(org.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("AuthenticateOrganization: wrong password for org id=%d", org.ID)
		return 0, ErrInvalidCredentials
	}

	return org.ID, nil
}

// AuthenticateAdministrator проверяет пару email/пароль администратора
// и возвращает его ID
func (s *Service) AuthenticateAdministrator(ctx context.Context, email, password string) (int64, error) {
	adm, err := s.adminStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("AuthenticateAdministrator: unknown email %s", email)
			return 0, ErrInvalidCredentials
		}
		s.logger.Error("AuthenticateAdministrator: credential lookup failed: %v", err)
		return 0, fmt.Errorf("%w: credential lookup failed: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("AuthenticateAdministrator: wrong password for admin id=%d", adm.ID)
		return 0, ErrInvalidCredentials
	}

	return adm.ID, nil
}
