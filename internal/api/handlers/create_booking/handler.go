package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PMS-ReservationService/internal/api/handlers"
	createBooking "github.com/m04kA/PMS-ReservationService/internal/usecase/create_booking"
)

// Тексты ошибок — внешний контракт, менять только вместе с клиентами
const (
	msgInvalidRequestBody = "Invalid request body"
	msgSlotNotFound       = "Slot not found"
	msgNoCapacity         = "No slots available"
	msgInvalidDateTime    = "Invalid start or end datetime"
	msgInvalidRange       = "End datetime must be after start datetime"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrNoCapacity):
			h.logger.Warn("POST /bookings - No capacity: slot_id=%d", req.SlotID)
			handlers.RespondBadRequest(w, msgNoCapacity)

		case errors.Is(err, createBooking.ErrInvalidDateTime):
			h.logger.Warn("POST /bookings - Invalid datetime: slot_id=%d", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - End before start: slot_id=%d", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot_id=%d, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, slot_id=%d, token=%s",
		result.ID, req.SlotID, result.Token)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
