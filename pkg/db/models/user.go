package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/enums"
)

// User represents the canonical identity entity for both admins and
// customers; the role column is what separates them.
type User struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name            string     `gorm:"column:name;not null"`
	Email           string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	PhoneNumber     string     `gorm:"column:phone_number"`
	PasswordHash    string     `gorm:"column:password_hash;not null"`
	Role            enums.Role `gorm:"column:role;type:text;not null;default:'user'"`
	ProfileImageURL string     `gorm:"column:profile_image_url"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
