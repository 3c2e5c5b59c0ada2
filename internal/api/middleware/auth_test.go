package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMS-ReservationService/internal/service/auth"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

// stubAuthenticator принимает единственную пару учетных данных
type stubAuthenticator struct {
	email, password string
	orgID, adminID  int64
}

func (s *stubAuthenticator) AuthenticateOrganization(ctx context.Context, email, password string) (int64, error) {
	if email == s.email && password == s.password {
		return s.orgID, nil
	}
	return 0, auth.ErrInvalidCredentials
}

func (s *stubAuthenticator) AuthenticateAdministrator(ctx context.Context, email, password string) (int64, error) {
	if email == s.email && password == s.password {
		return s.adminID, nil
	}
	return 0, auth.ErrInvalidCredentials
}

func TestOrgAuth(t *testing.T) {
	authn := &stubAuthenticator{email: "mall@example.com", password: "secret", orgID: 7}

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetOrganizationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := OrgAuth(authn, nopLogger{})(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/org/dashboard", nil)
	req.SetBasicAuth("mall@example.com", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(7), gotID)
}

func TestOrgAuth_Rejections(t *testing.T) {
	authn := &stubAuthenticator{email: "mall@example.com", password: "secret", orgID: 7}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})
	handler := OrgAuth(authn, nopLogger{})(next)

	t.Run("no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/org/dashboard", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/org/dashboard", nil)
		req.SetBasicAuth("mall@example.com", "wrong")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminAuth(t *testing.T) {
	authn := &stubAuthenticator{email: "root@example.com", password: "admin", adminID: 1}

	var gotID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetAdministratorID(r.Context())
	})
	handler := AdminAuth(authn, nopLogger{})(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	req.SetBasicAuth("root@example.com", "admin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, int64(1), gotID)
}

func TestContextGetters_Empty(t *testing.T) {
	_, ok := GetOrganizationID(context.Background())
	assert.False(t, ok)

	_, ok = GetAdministratorID(context.Background())
	assert.False(t, ok)
}
