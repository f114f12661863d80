package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	apdomain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/metrics"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type CompleteAppointment struct {
	repo  apdomain.Repository
	clock domain.Clock
	audit audit.Recorder
}

func NewCompleteAppointment(
	repo apdomain.Repository,
	clock domain.Clock,
	audit audit.Recorder,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

// Execute marks a confirmed appointment as completed. Only the user behind
// the appointment's professional may do so.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	requesterID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("appointment_not_found", "Appointment not found.")
	}
	if err != nil {
		return nil, err
	}

	if !apdomain.IsProfessionalUser(ap, requesterID) {
		return nil, httperr.ForbiddenErr("not_appointment_professional", "Only the professional can mark an appointment as completed.")
	}

	if err := apdomain.Complete(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if errors.Is(err, apdomain.ErrStatusChanged) {
			return nil, httperr.InvalidInput("invalid_state", "Only confirmed appointments can be completed.")
		}
		return nil, err
	}

	metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(requesterID),
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: audit.Ptr(ap.ID),
	})

	return ap, nil
}
