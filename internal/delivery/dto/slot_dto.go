package dto

// SlotView is one selectable slot. Value is the canonical label submitted
// with the booking ("10:00 AM"); Display is the lowercased form shown in the
// picker ("10:00 am").
type SlotView struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

// DayBucketView is one day tab of the slot picker. Index is the bucket's
// position in the grid, which shifts when fully-booked days are omitted.
type DayBucketView struct {
	Index      int        `json:"index"`
	Weekday    string     `json:"weekday"`
	DayOfMonth int        `json:"day_of_month"`
	Slots      []SlotView `json:"slots"`
}
