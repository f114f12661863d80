package appointment

import (
	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// IsWithinAvailability reports whether req fits entirely inside at least one
// of the published windows.
func IsWithinAvailability(slots []models.Availability, req timeslot.Window) bool {
	windows := make([]timeslot.Window, 0, len(slots))
	for _, s := range slots {
		w, err := timeslot.Parse(s.StartTime, s.EndTime)
		if err != nil {
			continue
		}
		windows = append(windows, w)
	}
	return timeslot.AnyContains(windows, req)
}

// HasConflict reports whether req overlaps any of the existing appointments.
// Callers pass only the CONFIRMED appointments of one professional and date.
func HasConflict(existing []models.Appointment, req timeslot.Window) bool {
	for i := range existing {
		w, err := Window(&existing[i])
		if err != nil {
			continue
		}
		if w.Overlaps(req) {
			return true
		}
	}
	return false
}
