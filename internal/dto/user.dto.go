package dto

import (
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type ProfessionalSummaryDTO struct {
	ID        string `json:"id"`
	Specialty string `json:"specialty"`
	Active    bool   `json:"active"`
}

type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`

	Professional *ProfessionalSummaryDTO `json:"professional,omitempty"`
}

func User(u *models.User) UserDTO {
	out := UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if p := u.Professional; p != nil {
		out.Professional = &ProfessionalSummaryDTO{
			ID:        p.ID,
			Specialty: p.Specialty,
			Active:    p.Active,
		}
	}
	return out
}

func Users(us []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(us))
	for i := range us {
		out = append(out, User(&us[i]))
	}
	return out
}
