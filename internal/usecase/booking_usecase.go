package usecase

import (
	"context"
	"errors"
	"fmt"

	"prescripto-patient-client/internal/domain/entity"
	"prescripto-patient-client/internal/domain/gateway"
	"prescripto-patient-client/internal/schedule"
	"prescripto-patient-client/internal/state"

	"github.com/sirupsen/logrus"
)

var (
	ErrLoginRequired  = errors.New("login required")
	ErrNoSlotSelected = errors.New("no slot selected")
	ErrNoSuchDay      = errors.New("selected day is not in the grid")
)

type BookingUsecase interface {
	BookSlot(ctx context.Context, doctorID string, grid entity.AvailabilityGrid, dayIndex int, slotTime string) (string, error)
}

type bookingUsecase struct {
	backend gateway.Backend
	store   *state.Store
	log     *logrus.Logger
}

func NewBookingUsecase(backend gateway.Backend, store *state.Store, log *logrus.Logger) BookingUsecase {
	return &bookingUsecase{
		backend: backend,
		store:   store,
		log:     log,
	}
}

// BookSlot submits one booking for the given doctor.
//
// Preconditions are checked before any network call: a session token must be
// present (otherwise the caller redirects to login) and a time label must be
// selected. The slot date is derived from the chosen bucket's first entry;
// every slot in a bucket shares the same calendar day by construction.
//
// On success the shared doctor directory is refreshed so the newly booked
// slot disappears from subsequent grids. On failure nothing is retried and
// no state changes.
func (u *bookingUsecase) BookSlot(ctx context.Context, doctorID string, grid entity.AvailabilityGrid, dayIndex int, slotTime string) (string, error) {
	token := u.store.Token()
	if token == "" {
		return "", ErrLoginRequired
	}
	if slotTime == "" {
		return "", ErrNoSlotSelected
	}
	if dayIndex < 0 || dayIndex >= len(grid) || len(grid[dayIndex]) == 0 {
		return "", ErrNoSuchDay
	}

	slotDate := schedule.DateKey(grid[dayIndex][0].Datetime)

	message, err := u.backend.BookAppointment(ctx, token, &gateway.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotDate: slotDate,
		SlotTime: slotTime,
	})
	if err != nil {
		u.log.Warnf("Booking failed for doctor %s at %s %s: %v", doctorID, slotDate, slotTime, err)
		return "", fmt.Errorf("book appointment: %w", err)
	}

	u.log.Infof("Booked doctor %s at %s %s", doctorID, slotDate, slotTime)

	if err := u.store.RefreshDoctors(ctx); err != nil {
		// The booking itself succeeded; a stale directory corrects itself on
		// the next refresh.
		u.log.Warnf("Doctor refresh after booking failed: %v", err)
	}

	return message, nil
}
