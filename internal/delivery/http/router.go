package http

import (
	"net/http"

	"hospital-management-system/internal/delivery/http/handler"
	"hospital-management-system/internal/delivery/http/middleware"
	"hospital-management-system/internal/service"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	registrationHandler  *handler.RegistrationHandler
	patientHandler       *handler.PatientHandler
	dashboardHandler     *handler.DashboardHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	capabilityMiddleware *middleware.CapabilityMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	registrationHandler *handler.RegistrationHandler,
	patientHandler *handler.PatientHandler,
	dashboardHandler *handler.DashboardHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	capabilityMiddleware *middleware.CapabilityMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		registrationHandler:  registrationHandler,
		patientHandler:       patientHandler,
		dashboardHandler:     dashboardHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		capabilityMiddleware: capabilityMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Registration routes (public)
	api.HandleFunc("/register", r.registrationHandler.RegisterUser).Methods(http.MethodPost)
	api.HandleFunc("/register/hospital", r.registrationHandler.RegisterHospital).Methods(http.MethodPost)
	api.HandleFunc("/register/clinic", r.registrationHandler.RegisterClinic).Methods(http.MethodPost)
	api.HandleFunc("/register/doctor", r.registrationHandler.RegisterDoctor).Methods(http.MethodPost)
	api.HandleFunc("/register/hospital-admin", r.registrationHandler.RegisterHospitalAdmin).Methods(http.MethodPost)
	api.HandleFunc("/register/patient", r.patientHandler.RegisterPatient).Methods(http.MethodPost)

	// Login routes (public). The aliases only pin the claimed role; the
	// privilege check itself happens against the capability rows.
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/doctor-login", r.authHandler.LoginAs(string(service.RoleDoctor))).Methods(http.MethodPost)
	api.HandleFunc("/hospital-admin-login", r.authHandler.LoginAs(string(service.RoleHospitalAdmin))).Methods(http.MethodPost)
	api.HandleFunc("/admin-login", r.authHandler.LoginAs(string(service.RoleStaff))).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient routes (any authenticated user)
	patients := api.PathPrefix("").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(r.capabilityMiddleware.Attach)
	patients.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	patients.HandleFunc("/patients/add", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	patients.HandleFunc("/patients/{mr_number}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/patients/{mr_number}/add-record", r.patientHandler.AddRecord).Methods(http.MethodPost)
	patients.HandleFunc("/patient-records", r.patientHandler.SearchRecords).Methods(http.MethodGet)
	patients.HandleFunc("/dashboard", r.dashboardHandler.HomeDashboard).Methods(http.MethodGet)

	// Doctor dashboard (doctor capability required)
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(r.capabilityMiddleware.RequireDoctor)
	doctor.HandleFunc("/doctor-dashboard", r.dashboardHandler.DoctorDashboard).Methods(http.MethodGet)

	// Hospital admin dashboard (hospital admin capability required)
	hospitalAdmin := api.PathPrefix("/hospital-admin").Subrouter()
	hospitalAdmin.Use(r.authMiddleware.Authenticate)
	hospitalAdmin.Use(r.capabilityMiddleware.RequireHospitalAdmin)
	hospitalAdmin.HandleFunc("/dashboard", r.dashboardHandler.HospitalAdminDashboard).Methods(http.MethodGet)

	// Admin routes (staff only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.capabilityMiddleware.RequireStaff)
	admin.HandleFunc("/dashboard", r.dashboardHandler.AdminDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
