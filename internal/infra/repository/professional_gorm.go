package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// professionalQueries is shared by every repository that needs to resolve
// or lock a professional.
type professionalQueries struct {
	db *gorm.DB
}

func (q professionalQueries) GetProfessionalByID(
	ctx context.Context,
	id string,
) (*models.Professional, error) {

	var p models.Professional
	if err := conn(ctx, q.db).
		Preload("User").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (q professionalQueries) GetProfessionalByUserID(
	ctx context.Context,
	userID string,
) (*models.Professional, error) {

	var p models.Professional
	if err := conn(ctx, q.db).
		Preload("User").
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (q professionalQueries) LockProfessional(
	ctx context.Context,
	id string,
) error {

	var p models.Professional
	if err := conn(ctx, q.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return notFound(err)
	}
	return nil
}

// --------------------------------------------------
// Professional directory / promotion
// --------------------------------------------------

type ProfessionalGormRepository struct {
	professionalQueries
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{professionalQueries{db: db}}
}

func (r *ProfessionalGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := conn(ctx, r.db).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *ProfessionalGormRepository) UpdateUserRole(
	ctx context.Context,
	userID string,
	role string,
) error {
	return conn(ctx, r.db).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}

func (r *ProfessionalGormRepository) CreateProfessional(
	ctx context.Context,
	p *models.Professional,
) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *ProfessionalGormRepository) ListActive(
	ctx context.Context,
) ([]models.Professional, error) {

	var out []models.Professional
	if err := conn(ctx, r.db).
		Preload("User").
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProfessionalGormRepository) GetWithAvailability(
	ctx context.Context,
	id string,
) (*models.Professional, error) {

	var p models.Professional
	if err := conn(ctx, r.db).
		Preload("User").
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC, start_time ASC")
		}).
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
