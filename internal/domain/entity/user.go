package entity

// Address is the two-line free-text address stored on a user profile.
// It travels as a JSON-encoded string inside the multipart update form.
type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// UserProfile is the authenticated patient's profile record. Mutable only
// through an explicit save that round-trips via the backend; the client never
// patches it incrementally.
type UserProfile struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	DOB     string  `json:"dob"`
	Gender  string  `json:"gender"`
	Image   string  `json:"image"`
}

// Clone returns an independent copy, used to seed an edit draft without
// aliasing the shared cache.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
