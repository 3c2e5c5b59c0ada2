package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/PMS-ReservationService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

const validBody = `{
	"slotId": 1,
	"customerName": "Ivan Petrov",
	"phoneNumber": "+79990001122",
	"vehicleType": "4W",
	"vehicleNumber": "A123BC",
	"startDate": "2025-10-15",
	"startTime": "10:00",
	"endDate": "2025-10-15",
	"endTime": "18:00"
}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:            42,
		SlotID:        1,
		CustomerName:  "Ivan Petrov",
		VehicleType:   "4W",
		StartDatetime: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC),
		TotalCost:     400,
		Token:         "AB12CD",
		Pin:           "4321",
		Status:        "confirmed",
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "AB12CD", resp.Token)
	assert.Equal(t, "4321", resp.Pin)
	assert.Equal(t, "2025-10-15 10:00", resp.StartDatetime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"slot not found", createBooking.ErrSlotNotFound, http.StatusNotFound, "Slot not found"},
		{"no capacity", createBooking.ErrNoCapacity, http.StatusBadRequest, "No slots available"},
		{"invalid datetime", createBooking.ErrInvalidDateTime, http.StatusBadRequest, "Invalid start or end datetime"},
		{"inverted range", createBooking.ErrInvalidRange, http.StatusBadRequest, "End datetime must be after start datetime"},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rec))
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{"slotId": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", errorBody(t, rec))
}
