package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
	cancelBooking "github.com/m04kA/PMS-ReservationService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingCredentials = "Token and PIN are required"
	msgBookingNotFound    = "Booking not found"
	msgAlreadyCancelled   = "Booking is already cancelled"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Token string `json:"token"`
	Pin   string `json:"pin"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Token == "" || req.Pin == "" {
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	if err := h.useCase.Execute(r.Context(), req.Token, req.Pin); err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: token=%s", req.Token)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrAlreadyCancelled):
			h.logger.Warn("POST /bookings/cancel - Already cancelled: token=%s", req.Token)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel: token=%s, error=%v", req.Token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: token=%s", req.Token)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{Token: req.Token, Status: "cancelled"})
}
