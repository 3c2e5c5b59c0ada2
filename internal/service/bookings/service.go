package bookings

import (
	"context"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	"github.com/m04kA/PMS-ReservationService/internal/service/bookings/models"
)

const qrCodeSize = 256

// Service просмотровые операции над бронированиями: страница подтверждения
// с QR-кодом и списки для организации и администратора
type Service struct {
	bookingRepo BookingRepository
	timeNow     TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, timeNow TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		timeNow:     timeNow,
		logger:      logger,
	}
}

// RenderConfirmation собирает данные страницы подтверждения.
// QR-код генерируется только при наличии обеих частей учётной пары;
// частичная пара отдаётся как есть, без QR.
func (s *Service) RenderConfirmation(token, pin string) (*models.ConfirmationView, error) {
	view := &models.ConfirmationView{
		Token:   token,
		Pin:     pin,
		Message: "Show this code at the parking entrance",
	}

	if token == "" || pin == "" {
		return view, nil
	}

	payload := fmt.Sprintf("Token: %s\nPIN: %s", token, pin)
	png, err := qrcode.Encode(payload, qrcode.Medium, qrCodeSize)
	if err != nil {
		s.logger.Error("RenderConfirmation: failed to encode QR: %v", err)
		return nil, fmt.Errorf("%w: failed to encode QR: %v", ErrInternal, err)
	}
	view.QRCode = base64.StdEncoding.EncodeToString(png)

	return view, nil
}

// ListByOrganization возвращает бронирования по слотам организации
func (s *Service) ListByOrganization(ctx context.Context, filter domain.OrganizationBookingsFilter) (*models.BookingListResponse, error) {
	list, err := s.bookingRepo.ListByOrganization(ctx, filter)
	if err != nil {
		s.logger.Error("ListByOrganization: failed to list bookings for org=%d: %v", filter.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	return s.toListResponse(list), nil
}

// ListAll возвращает все бронирования платформы (административный обзор)
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	list, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	return s.toListResponse(list), nil
}

func (s *Service) toListResponse(list []*domain.Booking) *models.BookingListResponse {
	now := s.timeNow.Now()
	resp := &models.BookingListResponse{Bookings: make([]models.BookingView, 0, len(list))}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, now))
	}
	return resp
}
