package org_dashboard

import (
	"context"

	"github.com/m04kA/PMS-ReservationService/internal/service/reporting"
)

type ReportingService interface {
	BuildDashboard(ctx context.Context, organizationID int64) (*reporting.Dashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
