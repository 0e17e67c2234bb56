// Package schedule computes the rolling 7-day availability grid shown on the
// appointment page. Grids are rebuilt from scratch on every call and never
// stored.
package schedule

import (
	"fmt"
	"time"

	"prescripto-patient-client/internal/domain/entity"
)

const (
	openingHour = 10
	closingHour = 21
	slotStep    = 30 * time.Minute
)

// timeLabelLayout renders "10:00 AM" / "08:30 PM", matching the labels the
// backend stores in slots_booked.
const timeLabelLayout = "03:04 PM"

// DateKey formats t's calendar date as "day_month_year" with a 1-based month
// and no zero-padding, the key format of BookedSlotMap.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d_%d_%d", t.Day(), int(t.Month()), t.Year())
}

// TimeLabel formats t's clock time the way slots are displayed and booked.
func TimeLabel(t time.Time) string {
	return t.Format(timeLabelLayout)
}

// BuildGrid produces the availability grid for the 7 calendar days starting
// at now, excluding slots already present in booked.
//
// Day 0 starts at the current hour plus one if past 10, otherwise at 10, with
// the minute rounded DOWN to :30 or :00 (10:45 yields a 10:30 start; this
// mirrors the production UI and must not be "fixed" to round up). Later days
// start at 10:00. Every day ends at 21:00. Days left with no open slots are
// dropped from the grid entirely, so callers must index buckets by position,
// not by day offset.
func BuildGrid(booked entity.BookedSlotMap, now time.Time) entity.AvailabilityGrid {
	grid := make(entity.AvailabilityGrid, 0, 7)

	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i)
		end := time.Date(day.Year(), day.Month(), day.Day(), closingHour, 0, 0, 0, day.Location())

		var bucket entity.DayBucket
		for t := dayStart(now, i); t.Before(end); t = t.Add(slotStep) {
			label := TimeLabel(t)
			if booked.Booked(DateKey(t), label) {
				continue
			}
			bucket = append(bucket, entity.Slot{Datetime: t, Label: label})
		}

		if len(bucket) > 0 {
			grid = append(grid, bucket)
		}
	}

	return grid
}

// dayStart computes the first candidate slot time for day offset i.
func dayStart(now time.Time, i int) time.Time {
	day := now.AddDate(0, 0, i)
	if i > 0 {
		return time.Date(day.Year(), day.Month(), day.Day(), openingHour, 0, 0, 0, day.Location())
	}

	hour := openingHour
	if now.Hour() > openingHour {
		hour = now.Hour() + 1
	}
	minute := 0
	if now.Minute() > 30 {
		minute = 30
	}
	// An hour of 24 normalizes to 00:xx of the next day, which lands past
	// today's closing time and yields an empty bucket, same as the UI.
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
