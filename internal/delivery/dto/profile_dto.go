package dto

// UpdateProfileForm carries the editable profile fields posted from the edit
// view. It doubles as the draft re-rendered with the user's values when a
// save fails.
type UpdateProfileForm struct {
	Name         string `validate:"required,min=2,max=100"`
	Phone        string `validate:"omitempty,max=20"`
	AddressLine1 string `validate:"max=200"`
	AddressLine2 string `validate:"max=200"`
	DOB          string `validate:"omitempty,datetime=2006-01-02"`
	Gender       string `validate:"omitempty,oneof=Male Female"`
}

// ProfileView is the read-mode rendering of a profile. Missing or
// "Not Selected" values are already replaced with the "Not Provided"
// placeholder; this transform is display-only and never written back.
type ProfileView struct {
	Name         string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	DOB          string
	Gender       string
	Image        string
}
