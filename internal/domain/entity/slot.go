package entity

import "time"

// Slot is one bookable 30-minute step.
type Slot struct {
	Datetime time.Time
	Label    string
}

// DayBucket holds the available slots of one calendar day, strictly
// increasing in time. Every slot in a bucket shares the same date key.
type DayBucket []Slot

// AvailabilityGrid is the rolling 7-day view of open slots. Days with zero
// available slots are omitted entirely, so the grid may be shorter than 7.
// It is recomputed per view and never persisted.
type AvailabilityGrid []DayBucket
