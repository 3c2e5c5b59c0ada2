package booking_confirmation

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMS-ReservationService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubService struct {
	gotToken, gotPin string
	view             *models.ConfirmationView
	err              error
}

func (s *stubService) RenderConfirmation(token, pin string) (*models.ConfirmationView, error) {
	s.gotToken, s.gotPin = token, pin
	return s.view, s.err
}

func TestHandle(t *testing.T) {
	svc := &stubService{view: &models.ConfirmationView{
		Token:  "AB12CD",
		Pin:    "4321",
		QRCode: "aGVsbG8=",
	}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/confirmation?token=AB12CD&pin=4321", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AB12CD", svc.gotToken)
	assert.Equal(t, "4321", svc.gotPin)

	var view models.ConfirmationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "AB12CD", view.Token)
	assert.NotEmpty(t, view.QRCode)
}

func TestHandle_NoParams(t *testing.T) {
	svc := &stubService{view: &models.ConfirmationView{}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/confirmation", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.gotToken)
	assert.Empty(t, svc.gotPin)
}

func TestHandle_ServiceFailure(t *testing.T) {
	svc := &stubService{err: errors.New("qr encoder broke")}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/confirmation?token=AB12CD&pin=4321", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
