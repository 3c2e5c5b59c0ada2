package list_organizations

import (
	"net/http"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/organizations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /organizations - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
