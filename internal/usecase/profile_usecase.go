package usecase

import (
	"context"
	"errors"
	"fmt"

	"prescripto-patient-client/internal/delivery/dto"
	"prescripto-patient-client/internal/domain/entity"
	"prescripto-patient-client/internal/domain/gateway"
	"prescripto-patient-client/internal/state"

	"github.com/sirupsen/logrus"
)

var ErrProfileNotLoaded = errors.New("profile not loaded yet")

type ProfileUsecase interface {
	BeginEdit() (*entity.UserProfile, error)
	Save(ctx context.Context, form *dto.UpdateProfileForm) (string, error)
}

type profileUsecase struct {
	backend gateway.Backend
	store   *state.Store
	log     *logrus.Logger
}

func NewProfileUsecase(backend gateway.Backend, store *state.Store, log *logrus.Logger) ProfileUsecase {
	return &profileUsecase{
		backend: backend,
		store:   store,
		log:     log,
	}
}

// BeginEdit returns an independent draft cloned from the canonical cached
// profile. Editing the draft never touches the shared cache; the draft is
// simply discarded on cancel.
func (u *profileUsecase) BeginEdit() (*entity.UserProfile, error) {
	if u.store.Token() == "" {
		return nil, ErrLoginRequired
	}
	profile := u.store.Profile()
	if profile == nil {
		return nil, ErrProfileNotLoaded
	}
	return profile, nil
}

// Save sends the draft fields to the backend. On success the shared cache is
// replaced with the backend's canonical view via a full refresh and the
// caller exits edit mode. On failure nothing is written anywhere; the caller
// keeps the draft on screen.
func (u *profileUsecase) Save(ctx context.Context, form *dto.UpdateProfileForm) (string, error) {
	token := u.store.Token()
	if token == "" {
		return "", ErrLoginRequired
	}

	message, err := u.backend.UpdateProfile(ctx, token, &gateway.UpdateProfileRequest{
		Name:  form.Name,
		Phone: form.Phone,
		Address: entity.Address{
			Line1: form.AddressLine1,
			Line2: form.AddressLine2,
		},
		DOB:    form.DOB,
		Gender: form.Gender,
	})
	if err != nil {
		u.log.Warnf("Profile save failed: %v", err)
		return "", fmt.Errorf("update profile: %w", err)
	}

	if err := u.store.RefreshProfile(ctx); err != nil {
		// The save itself went through; the cache clears and repopulates on
		// the next successful refresh.
		u.log.Warnf("Profile refresh after save failed: %v", err)
	}

	return message, nil
}
