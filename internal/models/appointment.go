package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ProfessionalID string        `gorm:"type:uuid;index:idx_appointment_prof_date;not null" json:"professionalId"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"professional,omitempty"`

	ClientID string `gorm:"type:uuid;index;not null" json:"clientId"`
	Client   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	Date      time.Time `gorm:"type:date;index:idx_appointment_prof_date;not null" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelledAt"`
	CompletedAt *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
