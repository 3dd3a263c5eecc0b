package middleware

import (
	"context"
	"net/http"

	"hospital-management-system/internal/service"
	"hospital-management-system/pkg/response"
)

// CapabilityMiddleware re-derives the user's capability from the store on
// every request. The session token never carries a role claim, so a revoked
// doctor or admin row takes effect immediately.
type CapabilityMiddleware struct {
	capabilityService service.CapabilityService
}

func NewCapabilityMiddleware(capabilityService service.CapabilityService) *CapabilityMiddleware {
	return &CapabilityMiddleware{capabilityService: capabilityService}
}

func (m *CapabilityMiddleware) resolve(w http.ResponseWriter, r *http.Request) (*service.Capability, bool) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return nil, false
	}

	capability, err := m.capabilityService.Resolve(r.Context(), userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			response.Unauthorized(w, "User no longer exists")
			return nil, false
		}
		response.InternalServerError(w, "Failed to resolve user capabilities")
		return nil, false
	}

	return capability, true
}

// Attach resolves the capability without gating on any particular role. Used
// on routes any authenticated user may reach, where handlers still need to
// know what the actor is (e.g. attaching the doctor to a new record).
func (m *CapabilityMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capability, ok := m.resolve(w, r)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), CapabilityKey, capability)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireDoctor admits only users with a doctor row.
func (m *CapabilityMiddleware) RequireDoctor(next http.Handler) http.Handler {
	return m.require(next, func(c *service.Capability) bool { return c.HasDoctor() },
		"This account does not have doctor privileges")
}

// RequireHospitalAdmin admits only users with a hospital admin row.
func (m *CapabilityMiddleware) RequireHospitalAdmin(next http.Handler) http.Handler {
	return m.require(next, func(c *service.Capability) bool { return c.HasHospitalAdmin() },
		"This account does not have hospital admin privileges")
}

// RequireStaff admits only users with the staff flag set.
func (m *CapabilityMiddleware) RequireStaff(next http.Handler) http.Handler {
	return m.require(next, func(c *service.Capability) bool { return c.HasStaff() },
		"This account does not have admin privileges")
}

func (m *CapabilityMiddleware) require(next http.Handler, allowed func(*service.Capability) bool, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capability, ok := m.resolve(w, r)
		if !ok {
			return
		}

		if !allowed(capability) {
			response.Forbidden(w, message)
			return
		}

		ctx := context.WithValue(r.Context(), CapabilityKey, capability)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCapabilityFromContext extracts the derived capability from context
func GetCapabilityFromContext(ctx context.Context) (*service.Capability, bool) {
	capability, ok := ctx.Value(CapabilityKey).(*service.Capability)
	return capability, ok
}
