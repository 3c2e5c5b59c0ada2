package organizations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
	"github.com/m04kA/PMS-ReservationService/internal/service/organizations/models"
)

// Service управление организациями: регистрация и публичный каталог
type Service struct {
	orgRepo  OrganizationRepository
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса организаций
func NewService(orgRepo OrganizationRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		orgRepo:  orgRepo,
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Register регистрирует новую организацию.
// Пароль хранится только в виде bcrypt-хэша.
func (s *Service) Register(ctx context.Context, req *models.RegisterOrganizationRequest) (*models.OrganizationResponse, error) {
	s.logger.Info("Register: email=%s name=%s", req.Email, req.Name)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	org := req.ToDomainOrganization()
	org.Email = strings.ToLower(strings.TrimSpace(org.Email))
	org.PasswordHash = string(hash)

	created, err := s.orgRepo.Create(ctx, org)
	if err != nil {
		if errors.Is(err, orgRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email %s already taken", org.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed to create organization: %v", err)
		return nil, fmt.Errorf("%w: failed to create organization: %v", ErrInternal, err)
	}

	s.logger.Info("Register: organization created id=%d", created.ID)
	return models.FromDomainOrganization(created, nil), nil
}

// GetByID возвращает организацию с её слотами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orgRepo.ErrOrganizationNotFound) {
			return nil, ErrOrganizationNotFound
		}
		s.logger.Error("GetByID: failed to get organization id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.ListByOrganization(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list slots for org=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	return models.FromDomainOrganization(org, slots), nil
}

// List возвращает все организации вместе с их слотами
func (s *Service) List(ctx context.Context) (*models.OrganizationListResponse, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list organizations: %v", err)
		return nil, fmt.Errorf("%w: failed to list organizations: %v", ErrInternal, err)
	}

	resp := &models.OrganizationListResponse{
		Organizations: make([]models.OrganizationResponse, 0, len(orgs)),
	}
	for _, org := range orgs {
		slots, err := s.slotRepo.ListByOrganization(ctx, org.ID)
		if err != nil {
			s.logger.Error("List: failed to list slots for org=%d: %v", org.ID, err)
			return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}
		resp.Organizations = append(resp.Organizations, *models.FromDomainOrganization(org, slots))
	}

	return resp, nil
}

// validateRegisterRequest проверяет обязательные поля регистрации
func validateRegisterRequest(req *models.RegisterOrganizationRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	if req.TotalSlots2W < 0 || req.TotalSlots4W < 0 {
		return fmt.Errorf("%w: declared slot counts must be non-negative", ErrInvalidInput)
	}
	return nil
}
