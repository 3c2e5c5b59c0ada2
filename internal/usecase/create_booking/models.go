package create_booking

import (
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// Request модель запроса на бронирование слота.
// Дата/время и стоимость приходят сырыми строками: их разбор —
// часть процедуры допуска, а не HTTP-слоя.
type Request struct {
	SlotID int64 // ID парковочного слота

	CustomerName string
	PhoneNumber  string
	Email        *string // Опционально

	VehicleType   string  // "2W" | "4W"
	VehicleNumber string
	VehicleBrand  *string // Опционально

	StartDate string // "2024-01-01"
	StartTime string // "10:00"
	EndDate   string
	EndTime   string

	TotalCost *string // Опциональная числовая строка; отсутствие/мусор => 0
}

// Response модель ответа с допущенным бронированием
type Response struct {
	ID     int64
	SlotID int64

	CustomerName string
	PhoneNumber  string
	Email        *string

	VehicleType   string
	VehicleNumber string
	VehicleBrand  *string

	StartDatetime time.Time
	EndDatetime   time.Time
	TotalCost     float64

	Token  string
	Pin    string
	Status string

	CreatedAt time.Time
}

func responseFromBooking(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		SlotID:        b.SlotID,
		CustomerName:  b.CustomerName,
		PhoneNumber:   b.PhoneNumber,
		Email:         b.Email,
		VehicleType:   string(b.VehicleType),
		VehicleNumber: b.VehicleNumber,
		VehicleBrand:  b.VehicleBrand,
		StartDatetime: b.StartDatetime,
		EndDatetime:   b.EndDatetime,
		TotalCost:     b.TotalCost,
		Token:         b.Token,
		Pin:           b.Pin,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}
