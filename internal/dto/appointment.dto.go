package dto

import (
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/domain/timeslot"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// PersonDTO holds the display fields of the other party of an appointment.
type PersonDTO struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty,omitempty"`
}

type AppointmentDTO struct {
	ID             string     `json:"id"`
	ProfessionalID string     `json:"professionalId"`
	ClientID       string     `json:"clientId"`
	Date           string     `json:"date"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`

	Professional *PersonDTO `json:"professional,omitempty"`
	Client       *PersonDTO `json:"client,omitempty"`
}

func Appointment(ap *models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:             ap.ID,
		ProfessionalID: ap.ProfessionalID,
		ClientID:       ap.ClientID,
		Date:           ap.Date.UTC().Format(timeslot.DateLayout),
		StartTime:      ap.StartTime,
		EndTime:        ap.EndTime,
		Status:         ap.Status,
		Notes:          ap.Notes,
		CancelledAt:    ap.CancelledAt,
		CompletedAt:    ap.CompletedAt,
		CreatedAt:      ap.CreatedAt,
	}

	if p := ap.Professional; p != nil {
		person := &PersonDTO{Specialty: p.Specialty}
		if p.User != nil {
			person.Name = p.User.Name
			person.Email = p.User.Email
		}
		out.Professional = person
	}

	if u := ap.Client; u != nil {
		out.Client = &PersonDTO{Name: u.Name, Email: u.Email}
	}

	return out
}

func Appointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, Appointment(&aps[i]))
	}
	return out
}
