package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/agenda-api/internal/domain"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// Repository is implemented by infra/repository.UserGormRepository.
type Repository interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ======================================================
// GET
// ======================================================

type GetUser struct {
	repo Repository
}

func NewGetUser(repo Repository) *GetUser {
	return &GetUser{repo: repo}
}

// Execute loads a user with its professional profile, if any. It serves both
// the caller's own profile and the admin lookup.
func (uc *GetUser) Execute(ctx context.Context, id string) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("user_not_found", "User not found.")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ======================================================
// LIST
// ======================================================

type ListUsers struct {
	repo Repository
}

func NewListUsers(repo Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]models.User, error) {
	out, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.User{}
	}
	return out, nil
}
