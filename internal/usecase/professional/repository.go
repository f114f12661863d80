package professional

import (
	"context"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// Repository is implemented by infra/repository.ProfessionalGormRepository.
type Repository interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetProfessionalByUserID(ctx context.Context, userID string) (*models.Professional, error)
	UpdateUserRole(ctx context.Context, userID string, role string) error
	CreateProfessional(ctx context.Context, p *models.Professional) error

	ListActive(ctx context.Context) ([]models.Professional, error)
	GetWithAvailability(ctx context.Context, id string) (*models.Professional, error)
}
