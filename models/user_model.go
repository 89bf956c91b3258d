package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Nickname *string   `gorm:"size:100" json:"nickname"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'user'" json:"role"`

	Phone     *string `gorm:"size:30" json:"phone"`
	City      *string `gorm:"size:100" json:"city"`
	AvatarURL *string `gorm:"size:255" json:"avatar_url"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is the label shown to other users in chat and on ads:
// nickname when set, otherwise the full name, otherwise the raw id.
func (u User) DisplayName() string {
	if u.Nickname != nil && *u.Nickname != "" {
		return *u.Nickname
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.ID.String()
}
