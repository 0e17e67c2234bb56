package entity

// BookedSlotMap maps a date key ("day_month_year", 1-based month, no
// zero-padding) to the time labels already booked on that day. A label
// present in the list is unavailable; a missing key means the whole day
// is open.
type BookedSlotMap map[string][]string

// Booked reports whether the given time label is taken on the given date key.
func (m BookedSlotMap) Booked(dateKey, timeLabel string) bool {
	for _, t := range m[dateKey] {
		if t == timeLabel {
			return true
		}
	}
	return false
}

// Doctor is one entry of the backend's doctor directory. The client caches
// it read-only; it is replaced wholesale on every refresh.
type Doctor struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Speciality  string        `json:"speciality"`
	Degree      string        `json:"degree"`
	Experience  string        `json:"experience"`
	Fees        float64       `json:"fees"`
	Image       string        `json:"image"`
	About       string        `json:"about"`
	SlotsBooked BookedSlotMap `json:"slots_booked"`
}
