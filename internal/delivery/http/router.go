package http

import (
	"net/http"

	"github.com/ahmadeq/test-clinic-demo/internal/delivery/http/handler"
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	patientHandler   *handler.PatientHandler
	visitHandler     *handler.VisitHandler
	paymentHandler   *handler.PaymentHandler
	analyticsHandler *handler.AnalyticsHandler
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	visitHandler *handler.VisitHandler,
	paymentHandler *handler.PaymentHandler,
	analyticsHandler *handler.AnalyticsHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		patientHandler:   patientHandler,
		visitHandler:     visitHandler,
		paymentHandler:   paymentHandler,
		analyticsHandler: analyticsHandler,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient registry
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	// Visit log. The follow-ups route is registered before the {id} route so
	// mux does not swallow it as a visit id.
	api.HandleFunc("/visits/follow-ups", r.visitHandler.GetFollowUps).Methods(http.MethodGet)
	api.HandleFunc("/visits", r.visitHandler.CreateVisit).Methods(http.MethodPost)
	api.HandleFunc("/visits", r.visitHandler.GetAllVisits).Methods(http.MethodGet)
	api.HandleFunc("/visits/{id}", r.visitHandler.GetVisit).Methods(http.MethodGet)
	api.HandleFunc("/visits/{id}", r.visitHandler.UpdateVisit).Methods(http.MethodPut)

	// Payment tracking
	api.HandleFunc("/payments", r.paymentHandler.CreatePayment).Methods(http.MethodPost)
	api.HandleFunc("/payments", r.paymentHandler.GetAllPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", r.paymentHandler.GetPayment).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", r.paymentHandler.UpdatePayment).Methods(http.MethodPut)

	// Analytics
	api.HandleFunc("/analytics/overview", r.analyticsHandler.GetOverview).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
