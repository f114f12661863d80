package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Professional is a user that can publish availability and receive bookings.
type Professional struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Specialty string `gorm:"size:100;not null" json:"specialty"`
	Active    bool   `gorm:"default:true" json:"active"`

	Availability []Availability `gorm:"foreignKey:ProfessionalID" json:"availability,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
