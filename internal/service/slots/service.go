package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
	"github.com/m04kA/PMS-ReservationService/internal/service/slots/models"
)

// Service управление парковочными слотами: создание владельцем
// и плоский публичный каталог
type Service struct {
	slotRepo SlotRepository
	orgRepo  OrganizationRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, orgRepo OrganizationRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		orgRepo:  orgRepo,
		logger:   logger,
	}
}

// Create создает слот от имени организации.
// Свободная ёмкость нового слота равна заявленной полной ёмкости.
func (s *Service) Create(ctx context.Context, organizationID int64, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: org=%d name=%s type=%s total=%d", organizationID, req.Name, req.SlotType, req.TotalSlots)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		if errors.Is(err, orgRepo.ErrOrganizationNotFound) {
			return nil, ErrOrganizationNotFound
		}
		s.logger.Error("CreateSlot: failed to get organization id=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	created, err := s.slotRepo.Create(ctx, req.ToDomainSlot(organizationID))
	if err != nil {
		s.logger.Error("CreateSlot: failed to create slot: %v", err)
		return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: slot created id=%d org=%d", created.ID, organizationID)
	return models.FromDomainSlot(created), nil
}

// List возвращает плоский список всех слотов с данными организаций
func (s *Service) List(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	resp := &models.SlotListResponse{Slots: make([]models.SlotResponse, 0, len(slots))}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, *models.FromDomainSlotWithOrganization(slot))
	}
	return resp, nil
}

// ListByOrganization возвращает слоты одной организации
func (s *Service) ListByOrganization(ctx context.Context, organizationID int64) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Error("ListSlots: failed to list slots for org=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	resp := &models.SlotListResponse{Slots: make([]models.SlotResponse, 0, len(slots))}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, *models.FromDomainSlot(slot))
	}
	return resp, nil
}

// validateCreateRequest проверяет данные создаваемого слота
func validateCreateRequest(req *models.CreateSlotRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.VehicleClass(req.SlotType).IsValid() {
		return fmt.Errorf("%w: slotType must be %s or %s", ErrInvalidInput, domain.VehicleClass2W, domain.VehicleClass4W)
	}
	if req.TotalSlots <= 0 {
		return fmt.Errorf("%w: totalSlots must be positive", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	return nil
}
