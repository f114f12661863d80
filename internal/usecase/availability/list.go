package availability

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/agenda-api/internal/domain"
	avdomain "github.com/BruksfildServices01/agenda-api/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type ListAvailability struct {
	repo avdomain.Repository
}

func NewListAvailability(repo avdomain.Repository) *ListAvailability {
	return &ListAvailability{repo: repo}
}

func (uc *ListAvailability) Execute(
	ctx context.Context,
	professionalID string,
) ([]models.Availability, error) {

	if _, err := uc.repo.GetProfessionalByID(ctx, professionalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("professional_not_found", "Professional not found.")
		}
		return nil, err
	}

	slots, err := uc.repo.ListForProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.Availability{}
	}
	return slots, nil
}
