package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is a recurring weekly window. Times are "HH:mm" strings; the
// zero padding keeps lexical and chronological order identical.
type Availability struct {
	ID             string        `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID string        `gorm:"type:uuid;index:idx_availability_prof_day;not null" json:"professionalId"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DayOfWeek int    `gorm:"index:idx_availability_prof_day;not null" json:"dayOfWeek"`
	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
