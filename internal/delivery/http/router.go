package http

import (
	"net/http"

	"ehr-vaccine-service/internal/delivery/http/handler"
	"ehr-vaccine-service/internal/delivery/http/middleware"
	"ehr-vaccine-service/pkg/metrics"
	"ehr-vaccine-service/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	vaccineHandler     *handler.VaccineHandler
	patientHandler     *handler.PatientHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	vaccineHandler *handler.VaccineHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		vaccineHandler:     vaccineHandler,
		patientHandler:     patientHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		loggingMiddleware:  loggingMiddleware,
		recoveryMiddleware: recoveryMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Outermost first: recovery must see panics from every other layer.
	// CORS wraps the whole router in bootstrap so preflight requests reach it.
	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(middleware.Metrics)

	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Vaccine schedule routes (any authenticated user)
	vaccines := api.PathPrefix("/vaccines").Subrouter()
	vaccines.Use(r.authMiddleware.Authenticate)
	vaccines.HandleFunc("/schedules", r.vaccineHandler.GetSchedules).Methods(http.MethodGet)
	vaccines.HandleFunc("/alternative-schedules", r.vaccineHandler.GetAlternativeSchedules).Methods(http.MethodGet)
	vaccines.HandleFunc("/next-dose", r.vaccineHandler.GetNextDose).Methods(http.MethodGet)
	vaccines.HandleFunc("/dose-by-age", r.vaccineHandler.GetDoseByAge).Methods(http.MethodGet)
	vaccines.HandleFunc("/available", r.vaccineHandler.GetAvailableVaccines).Methods(http.MethodGet)
	vaccines.HandleFunc("/cvx-code", r.vaccineHandler.GetCVXCode).Methods(http.MethodGet)

	// Patient routes
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.Handle("", middleware.RequireClinicalStaff(http.HandlerFunc(r.patientHandler.CreatePatient))).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
