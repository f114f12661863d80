package professional

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type PromoteInput struct {
	UserID    string
	Specialty string
}

// PromoteToProfessional turns an existing user into a bookable professional.
type PromoteToProfessional struct {
	repo  Repository
	tx    domain.TxManager
	audit audit.Recorder
	log   *zap.Logger
}

func NewPromoteToProfessional(
	repo Repository,
	tx domain.TxManager,
	audit audit.Recorder,
	log *zap.Logger,
) *PromoteToProfessional {
	return &PromoteToProfessional{
		repo:  repo,
		tx:    tx,
		audit: audit,
		log:   log,
	}
}

func (uc *PromoteToProfessional) Execute(
	ctx context.Context,
	in PromoteInput,
	adminID string,
) (*models.Professional, error) {

	specialty := strings.TrimSpace(in.Specialty)
	if specialty == "" {
		return nil, httperr.InvalidInput("invalid_specialty", "specialty is required.")
	}

	user, err := uc.repo.GetUser(ctx, in.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("user_not_found", "User not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	_, err = uc.repo.GetProfessionalByUserID(ctx, user.ID)
	if err == nil {
		return nil, httperr.ConflictErr("already_professional", "User is already a professional.")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get professional: %w", err)
	}

	prof := &models.Professional{
		UserID:    user.ID,
		Specialty: specialty,
		Active:    true,
	}

	err = uc.tx.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.repo.UpdateUserRole(txCtx, user.ID, models.RoleProfessional); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		return uc.repo.CreateProfessional(txCtx, prof)
	})
	if httperr.IsUniqueViolation(err) {
		// lost the race against a concurrent promotion of the same user
		return nil, httperr.ConflictErr("already_professional", "User is already a professional.")
	}
	if err != nil {
		uc.log.Error("promote professional failed",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	user.Role = models.RoleProfessional
	prof.User = user

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(adminID),
		Action:   "professional_promoted",
		Entity:   "professional",
		EntityID: audit.Ptr(prof.ID),
		Metadata: map[string]any{
			"user_id":   user.ID,
			"specialty": specialty,
		},
	})

	return prof, nil
}
