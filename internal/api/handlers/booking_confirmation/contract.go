package booking_confirmation

import (
	"github.com/m04kA/PMS-ReservationService/internal/service/bookings/models"
)

type BookingService interface {
	RenderConfirmation(token, pin string) (*models.ConfirmationView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
