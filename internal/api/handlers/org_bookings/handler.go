package org_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/PMS-ReservationService/internal/api/middleware"
	"github.com/m04kA/PMS-ReservationService/internal/domain"
	"github.com/m04kA/PMS-ReservationService/pkg/ptr"
)

const (
	msgUnauthorized  = "authentication required"
	msgInvalidSlotID = "Invalid slotId parameter"
	msgInvalidStatus = "Invalid status parameter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/org/bookings?slotId=1&status=confirmed&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, ok := middleware.GetOrganizationID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter := domain.OrganizationBookingsFilter{OrganizationID: orgID}

	if raw := r.URL.Query().Get("slotId"); raw != "" {
		slotID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidSlotID)
			return
		}
		filter.SlotID = ptr.Ptr(slotID)
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if status != domain.StatusConfirmed && status != domain.StatusCancelled {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = ptr.Ptr(status)
	}

	filter.IncludeInactive = r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.ListByOrganization(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /org/bookings - Failed to list: org=%d, error=%v", orgID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
