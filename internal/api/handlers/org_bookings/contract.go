package org_bookings

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	"github.com/m04kA/PMS-ReservationService/internal/service/bookings/models"
)

type BookingService interface {
	ListByOrganization(ctx context.Context, filter domain.OrganizationBookingsFilter) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
