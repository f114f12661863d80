package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient       = "CLIENT"
	RoleProfessional = "PROFESSIONAL"
	RoleAdmin        = "ADMIN"
)

type User struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Role  string `gorm:"size:20;default:'CLIENT'" json:"role"`

	Professional *Professional `gorm:"foreignKey:UserID" json:"professional,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
