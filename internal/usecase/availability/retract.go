package availability

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	avdomain "github.com/BruksfildServices01/agenda-api/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/metrics"
)

type RetractAvailability struct {
	repo  avdomain.Repository
	audit audit.Recorder
}

func NewRetractAvailability(
	repo avdomain.Repository,
	audit audit.Recorder,
) *RetractAvailability {
	return &RetractAvailability{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes a window owned by requesterID. Appointments already booked
// inside the window are left untouched.
func (uc *RetractAvailability) Execute(
	ctx context.Context,
	availabilityID string,
	requesterID string,
) error {

	a, err := uc.repo.Get(ctx, availabilityID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFoundErr("availability_not_found", "Availability not found.")
	}
	if err != nil {
		return err
	}

	if a.Professional == nil || a.Professional.UserID != requesterID {
		return httperr.ForbiddenErr("not_availability_owner", "You can only delete your own availability.")
	}

	if err := uc.repo.Delete(ctx, a.ID); err != nil {
		return err
	}

	metrics.AvailabilityChanges.WithLabelValues("retracted").Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(requesterID),
		Action:   "availability_retracted",
		Entity:   "availability",
		EntityID: audit.Ptr(a.ID),
	})

	return nil
}
