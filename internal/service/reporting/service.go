package reporting

import (
	"context"
	"errors"
	"fmt"

	orgRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/organization"
)

// Dashboard сводка по организации на текущий момент
type Dashboard struct {
	OrganizationID   int64   `json:"organizationId"`
	OrganizationName string  `json:"organizationName"`
	TotalSlots       int     `json:"totalSlots"`
	AvailableSlots   int     `json:"availableSlots"`
	ActiveBookings   int     `json:"activeBookings"`
	MonthlyRevenue   float64 `json:"monthlyRevenue"`
}

// Service отчётность для кабинета организации
type Service struct {
	orgRepo     OrganizationRepository
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	timeNow     TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётности
func NewService(
	orgRepo OrganizationRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	timeNow TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		orgRepo:     orgRepo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		timeNow:     timeNow,
		logger:      logger,
	}
}

// BuildDashboard собирает сводку по организации.
// Активные бронирования — подтверждённые с ещё не прошедшим окончанием;
// выручка месяца считается по началу бронирования в текущем календарном месяце.
func (s *Service) BuildDashboard(ctx context.Context, organizationID int64) (*Dashboard, error) {
	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, orgRepo.ErrOrganizationNotFound) {
			return nil, ErrOrganizationNotFound
		}
		s.logger.Error("BuildDashboard: failed to get organization id=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	now := s.timeNow.Now()

	available, err := s.slotRepo.SumAvailableByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Error("BuildDashboard: failed to sum availability for org=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to sum availability: %v", ErrInternal, err)
	}

	active, err := s.bookingRepo.CountActiveByOrganization(ctx, organizationID, now)
	if err != nil {
		s.logger.Error("BuildDashboard: failed to count active bookings for org=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
	}

	revenue, err := s.bookingRepo.MonthlyRevenueByOrganization(ctx, organizationID, now.Year(), now.Month())
	if err != nil {
		s.logger.Error("BuildDashboard: failed to compute monthly revenue for org=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to compute monthly revenue: %v", ErrInternal, err)
	}

	return &Dashboard{
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		TotalSlots:       org.TotalDeclaredSlots(),
		AvailableSlots:   available,
		ActiveBookings:   active,
		MonthlyRevenue:   revenue,
	}, nil
}
