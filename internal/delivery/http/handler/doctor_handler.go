package handler

import (
	"net/http"

	"prescripto-patient-client/internal/converter"
	"prescripto-patient-client/internal/delivery/dto"
	"prescripto-patient-client/internal/state"

	"github.com/sirupsen/logrus"
)

// specialities the directory can be filtered by, matching the platform's
// fixed set.
var specialities = []string{
	"General physician",
	"Gynecologist",
	"Dermatologist",
	"Pediatricians",
	"Neurologist",
	"Gastroenterologist",
}

type DoctorHandler struct {
	store          *state.Store
	renderer       *Renderer
	currencySymbol string
	log            *logrus.Logger
}

func NewDoctorHandler(store *state.Store, renderer *Renderer, currencySymbol string, log *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{
		store:          store,
		renderer:       renderer,
		currencySymbol: currencySymbol,
		log:            log,
	}
}

type doctorListData struct {
	Doctors      []dto.DoctorView
	Specialities []string
	Selected     string
}

// ListDoctors renders the doctor directory, optionally filtered by the
// speciality query parameter. The page reads the shared cache only; the
// cache is refreshed at startup and after bookings, never from here.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	speciality := r.URL.Query().Get("speciality")

	doctors := h.store.Doctors()
	views := make([]dto.DoctorView, 0, len(doctors))
	for i := range doctors {
		if speciality != "" && doctors[i].Speciality != speciality {
			continue
		}
		views = append(views, *converter.DoctorToView(&doctors[i], h.currencySymbol))
	}

	h.renderer.Render(w, "doctors.html", &PageData{
		Title:    "All Doctors",
		LoggedIn: h.store.Token() != "",
		Flash:    popFlash(w, r),
		Data: doctorListData{
			Doctors:      views,
			Specialities: specialities,
			Selected:     speciality,
		},
	})
}

// MyAppointments renders the bookings view the client navigates to after a
// successful booking.
func (h *DoctorHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "bookings.html", &PageData{
		Title:    "My Appointments",
		LoggedIn: h.store.Token() != "",
		Flash:    popFlash(w, r),
	})
}
