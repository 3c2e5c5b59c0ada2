package register_organization

import (
	"errors"
	"net/http"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
	orgService "github.com/m04kA/PMS-ReservationService/internal/service/organizations"
	"github.com/m04kA/PMS-ReservationService/internal/service/organizations/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgEmailTaken         = "Email already registered"
)

type Handler struct {
	service OrganizationService
	logger  Logger
}

func NewHandler(service OrganizationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/organizations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterOrganizationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /organizations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, orgService.ErrEmailTaken):
			h.logger.Warn("POST /organizations - Email taken: %s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, orgService.ErrInvalidInput):
			h.logger.Warn("POST /organizations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /organizations - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /organizations - Organization registered: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
