package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"prescripto-patient-client/internal/converter"
	"prescripto-patient-client/internal/delivery/dto"
	"prescripto-patient-client/internal/schedule"
	"prescripto-patient-client/internal/state"
	"prescripto-patient-client/internal/usecase"
	"prescripto-patient-client/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const relatedDoctorLimit = 5

type AppointmentHandler struct {
	store          *state.Store
	bookingUsecase usecase.BookingUsecase
	renderer       *Renderer
	currencySymbol string
	now            func() time.Time
	log            *logrus.Logger
}

// NewAppointmentHandler creates the appointment-page handler. Pass a nil now
// to use the wall clock; tests inject a fixed one.
func NewAppointmentHandler(
	store *state.Store,
	bookingUsecase usecase.BookingUsecase,
	renderer *Renderer,
	currencySymbol string,
	now func() time.Time,
	log *logrus.Logger,
) *AppointmentHandler {
	if now == nil {
		now = time.Now
	}
	return &AppointmentHandler{
		store:          store,
		bookingUsecase: bookingUsecase,
		renderer:       renderer,
		currencySymbol: currencySymbol,
		now:            now,
		log:            log,
	}
}

type appointmentData struct {
	Doctor  *dto.DoctorView
	Days    []dto.DayBucketView
	Related []dto.DoctorView
}

// Show renders one doctor's detail page with a freshly computed availability
// grid. The grid is rebuilt on every request; it is never cached.
func (h *AppointmentHandler) Show(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["docId"]
	doc, ok := h.store.Doctor(docID)
	if !ok {
		setFlash(w, "error", "Doctor not found")
		http.Redirect(w, r, "/doctors", http.StatusSeeOther)
		return
	}

	grid := schedule.BuildGrid(doc.SlotsBooked, h.now())

	h.renderer.Render(w, "appointment.html", &PageData{
		Title:    doc.Name,
		LoggedIn: h.store.Token() != "",
		Flash:    popFlash(w, r),
		Data: appointmentData{
			Doctor:  converter.DoctorToView(doc, h.currencySymbol),
			Days:    converter.GridToViews(grid),
			Related: h.relatedDoctors(doc.ID, doc.Speciality),
		},
	})
}

// Book handles the slot-picker submission.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["docId"]
	doc, ok := h.store.Doctor(docID)
	if !ok {
		setFlash(w, "error", "Doctor not found")
		http.Redirect(w, r, "/doctors", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/appointment/"+docID, http.StatusSeeOther)
		return
	}
	dayIndex, err := strconv.Atoi(r.PostFormValue("day_index"))
	if err != nil {
		dayIndex = -1
	}
	slotTime := r.PostFormValue("slot_time")

	// Recomputed rather than carried over from the page render; the grid is
	// never persisted between requests.
	grid := schedule.BuildGrid(doc.SlotsBooked, h.now())

	message, err := h.bookingUsecase.BookSlot(r.Context(), docID, grid, dayIndex, slotTime)
	switch {
	case errors.Is(err, usecase.ErrLoginRequired):
		setFlash(w, "warn", "Login to Book Appointment")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, usecase.ErrNoSlotSelected):
		setFlash(w, "warn", "Please select a slot")
		http.Redirect(w, r, "/appointment/"+docID, http.StatusSeeOther)
	case errors.Is(err, usecase.ErrNoSuchDay):
		setFlash(w, "warn", "Please select a day")
		http.Redirect(w, r, "/appointment/"+docID, http.StatusSeeOther)
	case err != nil:
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/appointment/"+docID, http.StatusSeeOther)
	default:
		if message == "" {
			message = "Appointment booked"
		}
		setFlash(w, "success", message)
		http.Redirect(w, r, "/my-appointments", http.StatusSeeOther)
	}
}

// SlotsJSON serves the availability grid for one doctor as JSON, used by the
// appointment page to refresh the picker without a full reload.
func (h *AppointmentHandler) SlotsJSON(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["docId"]
	doc, ok := h.store.Doctor(docID)
	if !ok {
		response.NotFound(w, "Doctor not found")
		return
	}

	grid := schedule.BuildGrid(doc.SlotsBooked, h.now())
	response.Success(w, http.StatusOK, "Slots retrieved successfully", converter.GridToViews(grid))
}

// relatedDoctors returns up to relatedDoctorLimit other cached doctors with
// the same speciality.
func (h *AppointmentHandler) relatedDoctors(docID, speciality string) []dto.DoctorView {
	doctors := h.store.Doctors()
	related := make([]dto.DoctorView, 0, relatedDoctorLimit)
	for i := range doctors {
		if doctors[i].ID == docID || doctors[i].Speciality != speciality {
			continue
		}
		related = append(related, *converter.DoctorToView(&doctors[i], h.currencySymbol))
		if len(related) == relatedDoctorLimit {
			break
		}
	}
	return related
}
