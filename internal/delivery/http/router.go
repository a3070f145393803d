package http

import (
	"net/http"

	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	doctorHandler  *handler.DoctorHandler
	patientHandler *handler.PatientHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	requestLogger  *middleware.RequestLogger
	gatherer       prometheus.Gatherer
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLogger,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		doctorHandler:  doctorHandler,
		patientHandler: patientHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		requestLogger:  requestLogger,
		gatherer:       gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentAccount).Methods(http.MethodGet)

	// Doctor directory (public, used by the registration form)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)

	// Profile routes (protected)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Doctor-only routes
	doctorOnly := api.NewRoute().Subrouter()
	doctorOnly.Use(r.authMiddleware.Authenticate)
	doctorOnly.Use(middleware.RequireDoctor)
	doctorOnly.HandleFunc("/doctors/{id}/patients", r.doctorHandler.ListAssignedPatients).Methods(http.MethodGet)

	// Preflight requests match no route above, and mux only runs router
	// middleware (CORS included) on a match. A MatcherFunc rather than
	// Methods keeps 404 and 405 intact for every other method.
	r.router.MatcherFunc(isPreflight).PathPrefix("/").HandlerFunc(r.preflight)

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func isPreflight(req *http.Request, _ *mux.RouteMatch) bool {
	return req.Method == http.MethodOptions
}

func (r *Router) preflight(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
