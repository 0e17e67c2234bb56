package converter

import (
	"strings"

	"prescripto-patient-client/internal/delivery/dto"
	"prescripto-patient-client/internal/domain/entity"
)

// GridToViews converts an availability grid to the day tabs of the slot
// picker. Weekday and day-of-month come from each bucket's first slot;
// Index is the bucket's position in the (possibly shortened) grid.
func GridToViews(grid entity.AvailabilityGrid) []dto.DayBucketView {
	views := make([]dto.DayBucketView, len(grid))
	for i, bucket := range grid {
		first := bucket[0].Datetime
		view := dto.DayBucketView{
			Index:      i,
			Weekday:    strings.ToUpper(first.Format("Mon")),
			DayOfMonth: first.Day(),
			Slots:      make([]dto.SlotView, len(bucket)),
		}
		for j, slot := range bucket {
			view.Slots[j] = dto.SlotView{
				Value:   slot.Label,
				Display: strings.ToLower(slot.Label),
			}
		}
		views[i] = view
	}
	return views
}
