package gateway

import (
	"context"

	"prescripto-patient-client/internal/domain/entity"
)

// UpdateProfileRequest carries the editable profile fields. It is sent as a
// multipart form; Address is JSON-encoded into a single form field.
type UpdateProfileRequest struct {
	Name    string
	Phone   string
	Address entity.Address
	DOB     string
	Gender  string
}

// BookAppointmentRequest identifies one slot of one doctor.
type BookAppointmentRequest struct {
	DoctorID string `json:"docId"`
	SlotDate string `json:"slotDate"`
	SlotTime string `json:"slotTime"`
}

// APIError is an application-level failure: the backend answered with a
// success:false envelope and a human-readable message meant for the user.
// Transport failures (network errors, unreadable responses) are reported as
// plain errors instead.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Backend is the outbound interface to the booking platform's REST API.
// Every call is a single attempt; there are no retries anywhere in the
// client. Application-level failures (success:false envelopes) surface as
// *APIError, transport failures as plain errors.
type Backend interface {
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
	GetProfile(ctx context.Context, token string) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, req *UpdateProfileRequest) (string, error)
	BookAppointment(ctx context.Context, token string, req *BookAppointmentRequest) (string, error)
}
