package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/PMS-ReservationService/internal/api/middleware"
	slotService "github.com/m04kA/PMS-ReservationService/internal/service/slots"
	"github.com/m04kA/PMS-ReservationService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgUnauthorized         = "authentication required"
	msgOrganizationNotFound = "Organization not found"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/org/slots
// Организация берется из Basic-auth контекста, не из тела запроса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, ok := middleware.GetOrganizationID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /org/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), orgID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slotService.ErrInvalidInput):
			h.logger.Warn("POST /org/slots - Validation failed: org=%d, %v", orgID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, slotService.ErrOrganizationNotFound):
			h.logger.Warn("POST /org/slots - Organization not found: org=%d", orgID)
			handlers.RespondNotFound(w, msgOrganizationNotFound)

		default:
			h.logger.Error("POST /org/slots - Failed to create slot: org=%d, error=%v", orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /org/slots - Slot created: id=%d, org=%d", result.ID, orgID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
