package http

import (
	"net/http"

	"prescripto-patient-client/internal/delivery/http/handler"
	"prescripto-patient-client/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	profileHandler     *handler.ProfileHandler
	sessionHandler     *handler.SessionHandler
	logMiddleware      *middleware.RequestLogMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	profileHandler *handler.ProfileHandler,
	sessionHandler *handler.SessionHandler,
	logMiddleware *middleware.RequestLogMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		profileHandler:     profileHandler,
		sessionHandler:     sessionHandler,
		logMiddleware:      logMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/healthz", r.healthCheck).Methods(http.MethodGet)

	// Directory
	r.router.HandleFunc("/", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	r.router.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)

	// Appointment booking
	r.router.HandleFunc("/appointment/{docId}", r.appointmentHandler.Show).Methods(http.MethodGet)
	r.router.HandleFunc("/appointment/{docId}", r.appointmentHandler.Book).Methods(http.MethodPost)
	r.router.HandleFunc("/my-appointments", r.doctorHandler.MyAppointments).Methods(http.MethodGet)

	// Profile
	r.router.HandleFunc("/my-profile", r.profileHandler.Show).Methods(http.MethodGet)
	r.router.HandleFunc("/my-profile/edit", r.profileHandler.Edit).Methods(http.MethodGet)
	r.router.HandleFunc("/my-profile", r.profileHandler.Save).Methods(http.MethodPost)

	// Session
	r.router.HandleFunc("/login", r.sessionHandler.LoginForm).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.sessionHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.sessionHandler.Logout).Methods(http.MethodPost)

	// JSON endpoints
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/slots/{docId}", r.appointmentHandler.SlotsJSON).Methods(http.MethodGet)

	r.router.Use(r.logMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
