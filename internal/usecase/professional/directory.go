package professional

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/agenda-api/internal/domain"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type ListProfessionals struct {
	repo Repository
}

func NewListProfessionals(repo Repository) *ListProfessionals {
	return &ListProfessionals{repo: repo}
}

// Execute lists active professionals only.
func (uc *ListProfessionals) Execute(ctx context.Context) ([]models.Professional, error) {
	out, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Professional{}
	}
	return out, nil
}

type GetProfessional struct {
	repo Repository
}

func NewGetProfessional(repo Repository) *GetProfessional {
	return &GetProfessional{repo: repo}
}

// Execute returns the professional with its weekly availability.
func (uc *GetProfessional) Execute(ctx context.Context, id string) (*models.Professional, error) {
	p, err := uc.repo.GetWithAvailability(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("professional_not_found", "Professional not found.")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
