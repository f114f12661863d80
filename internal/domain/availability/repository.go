package availability

import (
	"context"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// Repository is the persistence contract of the availability manager.
// Lookups by id return domain.ErrNotFound when nothing matches.
type Repository interface {
	GetProfessionalByID(ctx context.Context, id string) (*models.Professional, error)
	GetProfessionalByUserID(ctx context.Context, userID string) (*models.Professional, error)
	LockProfessional(ctx context.Context, id string) error

	ListForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]models.Availability, error)

	// ListForProfessional orders by day of week then start time.
	ListForProfessional(ctx context.Context, professionalID string) ([]models.Availability, error)

	Create(ctx context.Context, a *models.Availability) error

	// Get loads the availability with its professional.
	Get(ctx context.Context, id string) (*models.Availability, error)
	Delete(ctx context.Context, id string) error
}
