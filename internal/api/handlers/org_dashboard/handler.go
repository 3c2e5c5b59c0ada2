package org_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/PMS-ReservationService/internal/api/middleware"
	"github.com/m04kA/PMS-ReservationService/internal/service/reporting"
)

const (
	msgUnauthorized         = "authentication required"
	msgOrganizationNotFound = "Organization not found"
)

type Handler struct {
	service ReportingService
	logger  Logger
}

func NewHandler(service ReportingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/org/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, ok := middleware.GetOrganizationID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.BuildDashboard(r.Context(), orgID)
	if err != nil {
		switch {
		case errors.Is(err, reporting.ErrOrganizationNotFound):
			h.logger.Warn("GET /org/dashboard - Organization not found: org=%d", orgID)
			handlers.RespondNotFound(w, msgOrganizationNotFound)

		default:
			h.logger.Error("GET /org/dashboard - Failed to build dashboard: org=%d, error=%v", orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
