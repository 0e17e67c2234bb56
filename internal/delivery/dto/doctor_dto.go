package dto

// DoctorView is the directory-card / detail rendering of one doctor.
type DoctorView struct {
	ID         string
	Name       string
	Speciality string
	Degree     string
	Experience string
	Fee        string
	Image      string
	About      string
}
