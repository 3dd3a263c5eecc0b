package handler

import (
	"net/http"

	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// DoctorDashboard handles the doctor dashboard
// @Summary Doctor dashboard
// @Description The doctor's own patients and most recent records
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /doctor-dashboard [get]
func (h *DashboardHandler) DoctorDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.DoctorDashboard(r.Context())
	if err != nil {
		if err == usecase.ErrCapabilityMissing {
			response.Forbidden(w, "This account does not have doctor privileges")
			return
		}
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// HospitalAdminDashboard handles the hospital admin dashboard
// @Summary Hospital admin dashboard
// @Description Counts and recent activity scoped to the admin's own hospital
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /hospital-admin/dashboard [get]
func (h *DashboardHandler) HospitalAdminDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.HospitalAdminDashboard(r.Context())
	if err != nil {
		if err == usecase.ErrCapabilityMissing {
			response.Forbidden(w, "This account does not have hospital admin privileges")
			return
		}
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// AdminDashboard handles the staff dashboard
// @Summary Admin dashboard
// @Description Global counts across all hospitals
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.AdminDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// HomeDashboard handles the plain-user landing view
// @Summary Home dashboard
// @Description Recent patients and records for any authenticated user
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) HomeDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.HomeDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
