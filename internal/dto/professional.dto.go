package dto

import "github.com/BruksfildServices01/agenda-api/internal/models"

type AvailabilityDTO struct {
	ID             string `json:"id"`
	ProfessionalID string `json:"professionalId"`
	DayOfWeek      int    `json:"dayOfWeek"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}

func Availability(a *models.Availability) AvailabilityDTO {
	return AvailabilityDTO{
		ID:             a.ID,
		ProfessionalID: a.ProfessionalID,
		DayOfWeek:      a.DayOfWeek,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
	}
}

func Availabilities(as []models.Availability) []AvailabilityDTO {
	out := make([]AvailabilityDTO, 0, len(as))
	for i := range as {
		out = append(out, Availability(&as[i]))
	}
	return out
}

type ProfessionalDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Active    bool   `json:"active"`

	// Availability is only set on the detail view.
	Availability []AvailabilityDTO `json:"availability,omitempty"`
}

func Professional(p *models.Professional) ProfessionalDTO {
	out := ProfessionalDTO{
		ID:        p.ID,
		UserID:    p.UserID,
		Specialty: p.Specialty,
		Active:    p.Active,
	}
	if p.User != nil {
		out.Name = p.User.Name
		out.Email = p.User.Email
	}
	if p.Availability != nil {
		out.Availability = Availabilities(p.Availability)
	}
	return out
}

func Professionals(ps []models.Professional) []ProfessionalDTO {
	out := make([]ProfessionalDTO, 0, len(ps))
	for i := range ps {
		out = append(out, Professional(&ps[i]))
	}
	return out
}
