package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/agenda-api/internal/authz"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	apdomain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type ListMyAppointments struct {
	repo apdomain.Repository
}

func NewListMyAppointments(repo apdomain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

// Execute lists the caller's appointments ordered by date and start time.
// Professionals see the agenda of their profile; everyone else sees the
// appointments they booked as a client.
func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	id authz.Identity,
) ([]models.Appointment, error) {

	if id.Is(models.RoleProfessional) {
		prof, err := uc.repo.GetProfessionalByUserID(ctx, id.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return []models.Appointment{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("get professional: %w", err)
		}

		return uc.repo.ListForProfessional(ctx, prof.ID)
	}

	return uc.repo.ListForClient(ctx, id.UserID)
}
