package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type AppointmentGormRepository struct {
	professionalQueries
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{professionalQueries{db: db}}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAvailabilityForDay(
	ctx context.Context,
	professionalID string,
	dayOfWeek int,
) ([]models.Availability, error) {

	var slots []models.Availability
	if err := conn(ctx, r.db).
		Where("professional_id = ? AND day_of_week = ?", professionalID, dayOfWeek).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListConfirmedForDate(
	ctx context.Context,
	professionalID string,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := conn(ctx, r.db).
		Select("id", "start_time", "end_time").
		Where(
			"professional_id = ? AND date = ? AND status = ?",
			professionalID,
			date.Format("2006-01-02"),
			string(domain.StatusConfirmed),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return conn(ctx, r.db).Omit("Professional", "Client").Create(ap).Error
}

// --------------------------------------------------
// Appointment (cancel / complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := conn(ctx, r.db).
		Preload("Professional.User").
		Preload("Client").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	res := conn(ctx, r.db).
		Model(ap).
		Where("status = ?", string(domain.StatusConfirmed)).
		Select("status", "cancelled_at", "completed_at", "updated_at").
		Updates(ap)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStatusChanged
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForProfessional(
	ctx context.Context,
	professionalID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := conn(ctx, r.db).
		Preload("Client").
		Where("professional_id = ?", professionalID).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := conn(ctx, r.db).
		Preload("Professional.User").
		Where("client_id = ?", clientID).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
