package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents one admitted reservation against a parking slot.
// Инвариант: StartDatetime < EndDatetime.
type Booking struct {
	ID     int64
	SlotID int64

	CustomerName string
	PhoneNumber  string
	Email        *string

	VehicleType   VehicleClass
	VehicleNumber string
	VehicleBrand  *string

	StartDatetime time.Time
	EndDatetime   time.Time
	TotalCost     float64

	// Token/PIN — учётная пара для получения места, не security-учётка
	Token string
	Pin   string

	Status      BookingStatus
	CancelledAt *time.Time

	CreatedAt time.Time
}

// IsActive returns true if the booking is confirmed and its window has not ended
func (b *Booking) IsActive(now time.Time) bool {
	return b.Status == StatusConfirmed && !b.EndDatetime.Before(now)
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OrganizationBookingsFilter фильтр для выборки бронирований организации
type OrganizationBookingsFilter struct {
	OrganizationID  int64          // Обязательный параметр
	SlotID          *int64         // Фильтр по слоту (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
