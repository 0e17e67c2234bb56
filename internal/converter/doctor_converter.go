package converter

import (
	"strconv"

	"prescripto-patient-client/internal/delivery/dto"
	"prescripto-patient-client/internal/domain/entity"
)

// DoctorToView converts a Doctor entity to its page rendering, formatting
// the fee with the configured currency symbol.
func DoctorToView(doc *entity.Doctor, currencySymbol string) *dto.DoctorView {
	if doc == nil {
		return nil
	}

	return &dto.DoctorView{
		ID:         doc.ID,
		Name:       doc.Name,
		Speciality: doc.Speciality,
		Degree:     doc.Degree,
		Experience: doc.Experience,
		Fee:        currencySymbol + strconv.FormatFloat(doc.Fees, 'f', -1, 64),
		Image:      doc.Image,
		About:      doc.About,
	}
}

// DoctorsToViews converts a slice of Doctor entities to directory cards.
func DoctorsToViews(docs []entity.Doctor, currencySymbol string) []dto.DoctorView {
	views := make([]dto.DoctorView, len(docs))
	for i := range docs {
		views[i] = *DoctorToView(&docs[i], currencySymbol)
	}
	return views
}
