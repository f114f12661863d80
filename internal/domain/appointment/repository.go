package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ErrStatusChanged is returned by UpdateAppointment when the stored
// appointment is no longer CONFIRMED.
var ErrStatusChanged = errors.New("appointment: status changed concurrently")

// Repository is the persistence contract of the appointment scheduler.
// Lookups by id return domain.ErrNotFound when nothing matches.
type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id string,
	) (*models.Professional, error)

	GetProfessionalByUserID(
		ctx context.Context,
		userID string,
	) (*models.Professional, error)

	// LockProfessional takes a row lock on the professional for the rest of
	// the current transaction.
	LockProfessional(
		ctx context.Context,
		id string,
	) error

	// -------- Availability --------
	ListAvailabilityForDay(
		ctx context.Context,
		professionalID string,
		dayOfWeek int,
	) ([]models.Availability, error)

	// -------- Appointment (create / conflict) --------
	ListConfirmedForDate(
		ctx context.Context,
		professionalID string,
		date time.Time,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------

	// GetAppointment loads the appointment with its professional and client.
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// UpdateAppointment writes the status and its timestamps only while the
	// stored row is still CONFIRMED, else it returns ErrStatusChanged.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------

	// ListForProfessional orders by date then start time and loads clients.
	ListForProfessional(
		ctx context.Context,
		professionalID string,
	) ([]models.Appointment, error)

	// ListForClient orders by date then start time and loads professionals
	// with their users.
	ListForClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)
}
