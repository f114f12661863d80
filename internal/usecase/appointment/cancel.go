package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	apdomain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/metrics"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type CancelAppointment struct {
	repo      apdomain.Repository
	clock     domain.Clock
	minNotice time.Duration
	audit     audit.Recorder
	log       *zap.Logger
}

// NewCancelAppointment builds the use case with the minimum notice, in
// hours, a cancellation must respect.
func NewCancelAppointment(
	repo apdomain.Repository,
	clock domain.Clock,
	minCancelHours int,
	audit audit.Recorder,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:      repo,
		clock:     clock,
		minNotice: time.Duration(minCancelHours) * time.Hour,
		audit:     audit,
		log:       log,
	}
}

func (uc *CancelAppointment) Execute(
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

	if !apdomain.IsOwnedBy(ap, requesterID) {
		return nil, httperr.ForbiddenErr("not_appointment_owner", "You can only cancel your own appointments.")
	}

	if err := apdomain.Cancel(ap, uc.clock.Now(), uc.minNotice); err != nil {
		uc.log.Info("cancellation rejected",
			zap.String("appointment_id", ap.ID),
			zap.String("code", httperr.CodeOf(err)),
		)
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if errors.Is(err, apdomain.ErrStatusChanged) {
			return nil, httperr.InvalidInput("invalid_state", "Only confirmed appointments can be cancelled.")
		}
		return nil, err
	}

	metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(requesterID),
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: audit.Ptr(ap.ID),
	})

	return ap, nil
}
