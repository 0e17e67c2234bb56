package converter

import (
	"prescripto-patient-client/internal/delivery/dto"
	"prescripto-patient-client/internal/domain/entity"
)

const notProvided = "Not Provided"

// displayOrPlaceholder maps absent or backend-placeholder values to the
// fixed read-mode placeholder. Display only; the stored value is untouched.
func displayOrPlaceholder(s string) string {
	if s == "" || s == "Not Selected" {
		return notProvided
	}
	return s
}

// ProfileToView converts a profile to its read-mode rendering.
func ProfileToView(p *entity.UserProfile) *dto.ProfileView {
	if p == nil {
		return nil
	}

	return &dto.ProfileView{
		Name:         displayOrPlaceholder(p.Name),
		Email:        displayOrPlaceholder(p.Email),
		Phone:        displayOrPlaceholder(p.Phone),
		AddressLine1: displayOrPlaceholder(p.Address.Line1),
		AddressLine2: displayOrPlaceholder(p.Address.Line2),
		DOB:          displayOrPlaceholder(p.DOB),
		Gender:       displayOrPlaceholder(p.Gender),
		Image:        p.Image,
	}
}

// ProfileToForm seeds the edit form from a profile draft with the raw stored
// values, not the display placeholders.
func ProfileToForm(p *entity.UserProfile) *dto.UpdateProfileForm {
	if p == nil {
		return nil
	}

	form := &dto.UpdateProfileForm{
		Name:         p.Name,
		Phone:        p.Phone,
		AddressLine1: p.Address.Line1,
		AddressLine2: p.Address.Line2,
		DOB:          p.DOB,
		Gender:       p.Gender,
	}
	// "Not Selected" is a backend placeholder, not a choice the form offers.
	if form.Gender == "Not Selected" {
		form.Gender = ""
	}
	return form
}
