package handler

import (
	"errors"
	"net/http"

	"prescripto-patient-client/internal/converter"
	"prescripto-patient-client/internal/delivery/dto"
	"prescripto-patient-client/internal/state"
	"prescripto-patient-client/internal/usecase"
	"prescripto-patient-client/pkg/validator"

	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	store          *state.Store
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
	renderer       *Renderer
	log            *logrus.Logger
}

func NewProfileHandler(
	store *state.Store,
	profileUsecase usecase.ProfileUsecase,
	validator *validator.CustomValidator,
	renderer *Renderer,
	log *logrus.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		store:          store,
		profileUsecase: profileUsecase,
		validator:      validator,
		renderer:       renderer,
		log:            log,
	}
}

type profileViewData struct {
	// Profile is nil while the first authenticated refresh is still in
	// flight; the template shows a loading placeholder then.
	Profile *dto.ProfileView
}

type profileEditData struct {
	Form   *dto.UpdateProfileForm
	Email  string
	Image  string
	Errors map[string]string
}

// Show renders the read-mode profile page.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	if h.store.Token() == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.renderer.Render(w, "profile.html", &PageData{
		Title:    "My Profile",
		LoggedIn: true,
		Flash:    popFlash(w, r),
		Data: profileViewData{
			Profile: converter.ProfileToView(h.store.Profile()),
		},
	})
}

// Edit enters edit mode with a draft cloned from the canonical cache.
func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
	draft, err := h.profileUsecase.BeginEdit()
	switch {
	case errors.Is(err, usecase.ErrLoginRequired):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, usecase.ErrProfileNotLoaded):
		setFlash(w, "warn", "Profile is still loading, try again")
		http.Redirect(w, r, "/my-profile", http.StatusSeeOther)
		return
	}

	h.renderer.Render(w, "profile_edit.html", &PageData{
		Title:    "Edit Profile",
		LoggedIn: true,
		Flash:    popFlash(w, r),
		Data: profileEditData{
			Form:  converter.ProfileToForm(draft),
			Email: draft.Email,
			Image: draft.Image,
		},
	})
}

// Save submits the edit draft. A failed save re-renders edit mode with the
// submitted values intact; a successful save exits edit mode and shows the
// freshly refreshed canonical profile.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	if h.store.Token() == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/my-profile", http.StatusSeeOther)
		return
	}

	form := &dto.UpdateProfileForm{
		Name:         r.PostFormValue("name"),
		Phone:        r.PostFormValue("phone"),
		AddressLine1: r.PostFormValue("address_line1"),
		AddressLine2: r.PostFormValue("address_line2"),
		DOB:          r.PostFormValue("dob"),
		Gender:       r.PostFormValue("gender"),
	}

	if err := h.validator.Validate(form); err != nil {
		h.renderEdit(w, form, h.validator.FormatValidationErrors(err), nil)
		return
	}

	message, err := h.profileUsecase.Save(r.Context(), form)
	if errors.Is(err, usecase.ErrLoginRequired) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		// Rendered inline rather than via the flash cookie; a cookie set
		// here would only surface on the next request.
		h.renderEdit(w, form, nil, &Flash{Level: "error", Message: userMessage(err)})
		return
	}

	if message == "" {
		message = "Profile updated"
	}
	setFlash(w, "success", message)
	http.Redirect(w, r, "/my-profile", http.StatusSeeOther)
}

func (h *ProfileHandler) renderEdit(w http.ResponseWriter, form *dto.UpdateProfileForm, errs map[string]string, flash *Flash) {
	var email, image string
	if p := h.store.Profile(); p != nil {
		email = p.Email
		image = p.Image
	}
	h.renderer.Render(w, "profile_edit.html", &PageData{
		Title:    "Edit Profile",
		LoggedIn: true,
		Flash:    flash,
		Data: profileEditData{
			Form:   form,
			Email:  email,
			Image:  image,
			Errors: errs,
		},
	})
}
