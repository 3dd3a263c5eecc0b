package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCapabilityService struct {
	capability *service.Capability
	err        error
}

func (s *stubCapabilityService) Resolve(ctx context.Context, userID uint) (*service.Capability, error) {
	return s.capability, s.err
}

func authedRequest(userID uint) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireDoctorAdmitsDoctor(t *testing.T) {
	m := NewCapabilityMiddleware(&stubCapabilityService{
		capability: &service.Capability{
			User:   &entity.User{ID: 1},
			Doctor: &entity.Doctor{ID: 10, UserID: 1},
		},
	})

	called := false
	w := httptest.NewRecorder()
	m.RequireDoctor(okHandler(&called)).ServeHTTP(w, authedRequest(1))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireDoctorRejectsPlainUser(t *testing.T) {
	m := NewCapabilityMiddleware(&stubCapabilityService{
		capability: &service.Capability{User: &entity.User{ID: 1}},
	})

	called := false
	w := httptest.NewRecorder()
	m.RequireDoctor(okHandler(&called)).ServeHTTP(w, authedRequest(1))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "does not have doctor privileges")
}

func TestRequireHospitalAdminRejectsDoctor(t *testing.T) {
	m := NewCapabilityMiddleware(&stubCapabilityService{
		capability: &service.Capability{
			User:   &entity.User{ID: 1},
			Doctor: &entity.Doctor{ID: 10, UserID: 1},
		},
	})

	called := false
	w := httptest.NewRecorder()
	m.RequireHospitalAdmin(okHandler(&called)).ServeHTTP(w, authedRequest(1))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "does not have hospital admin privileges")
}

func TestRequireStaffChecksFlag(t *testing.T) {
	m := NewCapabilityMiddleware(&stubCapabilityService{
		capability: &service.Capability{User: &entity.User{ID: 1, IsStaff: true}},
	})

	called := false
	w := httptest.NewRecorder()
	m.RequireStaff(okHandler(&called)).ServeHTTP(w, authedRequest(1))

	assert.True(t, called)
}

func TestAttachNeverGates(t *testing.T) {
	m := NewCapabilityMiddleware(&stubCapabilityService{
		capability: &service.Capability{User: &entity.User{ID: 1}},
	})

	var got *service.Capability
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capability, ok := GetCapabilityFromContext(r.Context())
		require.True(t, ok)
		got = capability
	})

	w := httptest.NewRecorder()
	m.Attach(handler).ServeHTTP(w, authedRequest(1))

	require.NotNil(t, got)
	assert.Equal(t, service.RolePlainUser, got.Role())
}

func TestRequireRejectsDeletedUser(t *testing.T) {
	m := NewCapabilityMiddleware(&stubCapabilityService{err: service.ErrUserNotFound})

	called := false
	w := httptest.NewRecorder()
	m.RequireDoctor(okHandler(&called)).ServeHTTP(w, authedRequest(1))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireWithoutAuthContext(t *testing.T) {
	m := NewCapabilityMiddleware(&stubCapabilityService{})

	called := false
	w := httptest.NewRecorder()
	m.RequireDoctor(okHandler(&called)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
