package create_booking

import (
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	createBooking "github.com/m04kA/PMS-ReservationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID        int64   `json:"slotId"`
	CustomerName  string  `json:"customerName"`
	PhoneNumber   string  `json:"phoneNumber"`
	Email         *string `json:"email,omitempty"`
	VehicleType   string  `json:"vehicleType"`
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleBrand  *string `json:"vehicleBrand,omitempty"`
	StartDate     string  `json:"startDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"` // "10:00"
	EndDate       string  `json:"endDate"`
	EndTime       string  `json:"endTime"`
	TotalCost     *string `json:"totalCost,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	SlotID        int64   `json:"slotId"`
	CustomerName  string  `json:"customerName"`
	PhoneNumber   string  `json:"phoneNumber"`
	Email         *string `json:"email,omitempty"`
	VehicleType   string  `json:"vehicleType"`
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleBrand  *string `json:"vehicleBrand,omitempty"`
	StartDatetime string  `json:"startDatetime"`
	EndDatetime   string  `json:"endDatetime"`
	TotalCost     float64 `json:"totalCost"`
	Token         string  `json:"token"`
	Pin           string  `json:"pin"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Разбор даты/времени и стоимости остается за use case.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		SlotID:        r.SlotID,
		CustomerName:  r.CustomerName,
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
		VehicleType:   r.VehicleType,
		VehicleNumber: r.VehicleNumber,
		VehicleBrand:  r.VehicleBrand,
		StartDate:     r.StartDate,
		StartTime:     r.StartTime,
		EndDate:       r.EndDate,
		EndTime:       r.EndTime,
		TotalCost:     r.TotalCost,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		SlotID:        resp.SlotID,
		CustomerName:  resp.CustomerName,
		PhoneNumber:   resp.PhoneNumber,
		Email:         resp.Email,
		VehicleType:   resp.VehicleType,
		VehicleNumber: resp.VehicleNumber,
		VehicleBrand:  resp.VehicleBrand,
		StartDatetime: resp.StartDatetime.Format(domain.DateTimeFormat),
		EndDatetime:   resp.EndDatetime.Format(domain.DateTimeFormat),
		TotalCost:     resp.TotalCost,
		Token:         resp.Token,
		Pin:           resp.Pin,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
