package availability

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	avdomain "github.com/BruksfildServices01/agenda-api/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/metrics"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type PublishAvailabilityInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

type PublishAvailability struct {
	repo  avdomain.Repository
	tx    domain.TxManager
	audit audit.Recorder
	log   *zap.Logger
}

func NewPublishAvailability(
	repo avdomain.Repository,
	tx domain.TxManager,
	audit audit.Recorder,
	log *zap.Logger,
) *PublishAvailability {
	return &PublishAvailability{
		repo:  repo,
		tx:    tx,
		audit: audit,
		log:   log,
	}
}

// Execute publishes a weekly window for the professional profile of userID.
// The overlap check and the insert share a transaction that holds the
// professional's row lock.
func (uc *PublishAvailability) Execute(
	ctx context.Context,
	in PublishAvailabilityInput,
	userID string,
) (*models.Availability, error) {

	if !avdomain.ValidDay(in.DayOfWeek) {
		return nil, httperr.InvalidInput("invalid_day_of_week", "dayOfWeek must be between 0 and 6.")
	}

	w, err := timeslot.Parse(in.StartTime, in.EndTime)
	if err != nil {
		return nil, httperr.InvalidInput("invalid_time", "Times must be in HH:mm format.")
	}
	if !w.Valid() {
		return nil, httperr.InvalidInput("invalid_time_range", "startTime must be before endTime.")
	}

	prof, err := uc.repo.GetProfessionalByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ForbiddenErr("not_a_professional", "User is not a professional.")
	}
	if err != nil {
		return nil, fmt.Errorf("get professional: %w", err)
	}

	a := &models.Availability{
		ProfessionalID: prof.ID,
		DayOfWeek:      in.DayOfWeek,
		StartTime:      w.Start.String(),
		EndTime:        w.End.String(),
	}

	err = uc.tx.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.repo.LockProfessional(txCtx, prof.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.NotFoundErr("professional_not_found", "Professional not found.")
			}
			return fmt.Errorf("lock professional: %w", err)
		}

		existing, err := uc.repo.ListForDay(txCtx, prof.ID, in.DayOfWeek)
		if err != nil {
			return fmt.Errorf("list availability: %w", err)
		}

		if avdomain.OverlapsExisting(existing, w) {
			return httperr.InvalidInput("availability_overlap", "Availability overlaps with an existing slot.")
		}

		return uc.repo.Create(txCtx, a)
	})
	if err != nil {
		if httperr.KindOf(err) == "" {
			uc.log.Error("publish availability failed",
				zap.String("professional_id", prof.ID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	metrics.AvailabilityChanges.WithLabelValues("published").Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(userID),
		Action:   "availability_published",
		Entity:   "availability",
		EntityID: audit.Ptr(a.ID),
		Metadata: map[string]any{
			"day_of_week": a.DayOfWeek,
			"start":       a.StartTime,
			"end":         a.EndTime,
		},
	})

	return a, nil
}
