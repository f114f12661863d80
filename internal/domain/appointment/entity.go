package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves a confirmed appointment to CANCELLED. The appointment must
// start at least minNotice after now.
func Cancel(ap *models.Appointment, now time.Time, minNotice time.Duration) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	startsAt, err := StartsAt(ap)
	if err != nil {
		return err
	}

	if startsAt.Sub(now) < minNotice {
		return httperr.InvalidInput(
			"cancellation_too_late",
			fmt.Sprintf("Cannot cancel with less than %d hours notice.", int(minNotice.Hours())),
		)
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// StartsAt is the UTC instant at which the appointment begins.
func StartsAt(ap *models.Appointment) (time.Time, error) {
	start, err := timeslot.ParseHM(ap.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return timeslot.At(ap.Date, start), nil
}

// Window returns the appointment's time of day as a window.
func Window(ap *models.Appointment) (timeslot.Window, error) {
	return timeslot.Parse(ap.StartTime, ap.EndTime)
}

// IsOwnedBy reports whether userID is the client or the professional of ap.
// ap.Professional must be loaded.
func IsOwnedBy(ap *models.Appointment, userID string) bool {
	return ap.ClientID == userID || IsProfessionalUser(ap, userID)
}

// IsProfessionalUser reports whether userID is the user behind the
// appointment's professional. ap.Professional must be loaded.
func IsProfessionalUser(ap *models.Appointment, userID string) bool {
	return ap.Professional != nil && ap.Professional.UserID == userID
}
