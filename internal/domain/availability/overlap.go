package availability

import (
	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// OverlapsExisting reports whether w overlaps any published window. Adjacent
// windows are allowed.
func OverlapsExisting(existing []models.Availability, w timeslot.Window) bool {
	windows := make([]timeslot.Window, 0, len(existing))
	for _, a := range existing {
		ew, err := timeslot.Parse(a.StartTime, a.EndTime)
		if err != nil {
			continue
		}
		windows = append(windows, ew)
	}
	return timeslot.AnyOverlaps(windows, w)
}

const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

func ValidDay(day int) bool {
	return day >= MinDayOfWeek && day <= MaxDayOfWeek
}
