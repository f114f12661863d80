package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type AvailabilityGormRepository struct {
	professionalQueries
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{professionalQueries{db: db}}
}

func (r *AvailabilityGormRepository) ListForDay(
	ctx context.Context,
	professionalID string,
	dayOfWeek int,
) ([]models.Availability, error) {

	var out []models.Availability
	if err := conn(ctx, r.db).
		Where("professional_id = ? AND day_of_week = ?", professionalID, dayOfWeek).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AvailabilityGormRepository) ListForProfessional(
	ctx context.Context,
	professionalID string,
) ([]models.Availability, error) {

	var out []models.Availability
	if err := conn(ctx, r.db).
		Where("professional_id = ?", professionalID).
		Order("day_of_week ASC, start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AvailabilityGormRepository) Create(
	ctx context.Context,
	a *models.Availability,
) error {
	return conn(ctx, r.db).Omit("Professional").Create(a).Error
}

func (r *AvailabilityGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Availability, error) {

	var a models.Availability
	if err := conn(ctx, r.db).
		Preload("Professional").
		Where("id = ?", id).
		First(&a).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *AvailabilityGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&models.Availability{}).Error
}

var _ domain.Repository = (*AvailabilityGormRepository)(nil)
