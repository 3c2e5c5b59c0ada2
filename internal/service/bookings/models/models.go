package models

import (
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// BookingView представление бронирования для списков организации и администратора
type BookingView struct {
	ID            int64     `json:"id"`
	SlotID        int64     `json:"slotId"`
	CustomerName  string    `json:"customerName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Email         *string   `json:"email,omitempty"`
	VehicleType   string    `json:"vehicleType"`
	VehicleNumber string    `json:"vehicleNumber"`
	VehicleBrand  *string   `json:"vehicleBrand,omitempty"`
	StartDatetime string    `json:"startDatetime"`
	EndDatetime   string    `json:"endDatetime"`
	TotalCost     float64   `json:"totalCost"`
	Token         string    `json:"token"`
	Status        string    `json:"status"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
}

// ConfirmationView данные страницы подтверждения бронирования.
// QRCode — PNG в base64, пустая строка когда пары токен/PIN нет.
type ConfirmationView struct {
	Token   string `json:"token"`
	Pin     string `json:"pin"`
	Message string `json:"message"`
	QRCode  string `json:"qrCode,omitempty"`
}

// FromDomainBooking конвертирует domain модель бронирования в DTO
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingView {
	if b == nil {
		return nil
	}
	return &BookingView{
		ID:            b.ID,
		SlotID:        b.SlotID,
		CustomerName:  b.CustomerName,
		PhoneNumber:   b.PhoneNumber,
		Email:         b.Email,
		VehicleType:   string(b.VehicleType),
		VehicleNumber: b.VehicleNumber,
		VehicleBrand:  b.VehicleBrand,
		StartDatetime: b.StartDatetime.Format(domain.DateTimeFormat),
		EndDatetime:   b.EndDatetime.Format(domain.DateTimeFormat),
		TotalCost:     b.TotalCost,
		Token:         b.Token,
		Status:        string(b.Status),
		Active:        b.IsActive(now),
		CreatedAt:     b.CreatedAt,
	}
}
