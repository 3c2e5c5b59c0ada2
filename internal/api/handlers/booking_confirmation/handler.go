package booking_confirmation

import (
	"net/http"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/bookings/confirmation?token=...&pin=...
// Параметры опциональны: без полной пары страница отдается без QR-кода.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	pin := r.URL.Query().Get("pin")

	view, err := h.service.RenderConfirmation(token, pin)
	if err != nil {
		h.logger.Error("GET /bookings/confirmation - Failed to render: token=%s, error=%v", token, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
