package appointment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	apdomain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/metrics"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProfessionalID string
	Date           string
	StartTime      string
	EndTime        string
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  apdomain.Repository
	tx    domain.TxManager
	clock domain.Clock
	audit audit.Recorder
	log   *zap.Logger
}

func NewCreateAppointment(
	repo apdomain.Repository,
	tx domain.TxManager,
	clock domain.Clock,
	audit audit.Recorder,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		tx:    tx,
		clock: clock,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a slot for clientID. Checks run in order and stop at the
// first failure; only the conflict check and the insert run inside the
// transaction.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
	clientID string,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in, clientID)
	if err != nil {
		if code := httperr.CodeOf(err); code != "" {
			metrics.AppointmentsRejected.WithLabelValues(code).Inc()
			uc.log.Info("appointment rejected",
				zap.String("code", code),
				zap.String("professional_id", in.ProfessionalID),
				zap.String("client_id", clientID),
				zap.String("date", in.Date),
			)
		}
		return nil, err
	}

	metrics.AppointmentsCreated.Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(clientID),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: audit.Ptr(ap.ID),
		Metadata: map[string]any{
			"professional_id": ap.ProfessionalID,
			"date":            in.Date,
			"start":           ap.StartTime,
			"end":             ap.EndTime,
		},
	})

	return ap, nil
}

func (uc *CreateAppointment) execute(
	ctx context.Context,
	in CreateAppointmentInput,
	clientID string,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Time ordering
	// --------------------------------------------------
	req, err := timeslot.Parse(in.StartTime, in.EndTime)
	if err != nil {
		return nil, httperr.InvalidInput("invalid_time", "Times must be in HH:mm format.")
	}
	if !req.Valid() {
		return nil, httperr.InvalidInput("invalid_time_range", "startTime must be before endTime.")
	}

	// --------------------------------------------------
	// 2. Not in the past (calendar date, UTC)
	// --------------------------------------------------
	date, err := timeslot.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.InvalidInput("invalid_date", "Date must be in YYYY-MM-DD format.")
	}

	today := timeslot.DateOf(uc.clock.Now())
	if date.Before(today) {
		return nil, httperr.InvalidInput("date_in_past", "Cannot book appointments in the past.")
	}

	// --------------------------------------------------
	// 3. Professional exists and is active
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get professional: %w", err)
	}
	if prof == nil || !prof.Active {
		return nil, httperr.NotFoundErr("professional_not_found", "Professional not found or inactive.")
	}

	// --------------------------------------------------
	// 4. Inside published availability
	// --------------------------------------------------
	slots, err := uc.repo.ListAvailabilityForDay(ctx, prof.ID, timeslot.Weekday(date))
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	if !apdomain.IsWithinAvailability(slots, req) {
		return nil, httperr.InvalidInput("outside_availability", "Requested time is outside professional availability.")
	}

	// --------------------------------------------------
	// 5. Conflict check + insert, serialized per professional
	// --------------------------------------------------
	ap := &models.Appointment{
		ProfessionalID: prof.ID,
		ClientID:       clientID,
		Date:           date,
		StartTime:      req.Start.String(),
		EndTime:        req.End.String(),
		Status:         string(apdomain.InitialStatus()),
		Notes:          in.Notes,
	}

	err = uc.tx.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.repo.LockProfessional(txCtx, prof.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.NotFoundErr("professional_not_found", "Professional not found or inactive.")
			}
			return fmt.Errorf("lock professional: %w", err)
		}

		existing, err := uc.repo.ListConfirmedForDate(txCtx, prof.ID, date)
		if err != nil {
			return fmt.Errorf("list confirmed appointments: %w", err)
		}

		if apdomain.HasConflict(existing, req) {
			return httperr.InvalidInput("time_conflict", "Time slot conflicts with an existing appointment.")
		}

		if err := uc.repo.CreateAppointment(txCtx, ap); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		if httperr.KindOf(err) == "" {
			uc.log.Error("appointment transaction failed",
				zap.String("professional_id", prof.ID),
				zap.Bool("serialization_failure", httperr.IsSerializationFailure(err)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	ap.Professional = prof
	return ap, nil
}
