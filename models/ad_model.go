package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AdStatusPending  = "pending"
	AdStatusActive   = "active"
	AdStatusExpired  = "expired"
	AdStatusRejected = "rejected"
	AdStatusArchived = "archived"
)

// IsValidAdStatus reports whether s is one of the five lifecycle statuses.
func IsValidAdStatus(s string) bool {
	switch s {
	case AdStatusPending, AdStatusActive, AdStatusExpired, AdStatusRejected, AdStatusArchived:
		return true
	}
	return false
}

type Ad struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"not null;index" json:"user_id"`
	CategoryID  uuid.UUID  `gorm:"not null;index" json:"category_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Price       *float64   `gorm:"type:numeric(12,2)" json:"price"`
	Location    *string    `gorm:"size:255" json:"location"`
	Phone       *string    `gorm:"size:30" json:"phone"`
	Status      string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Images      []string   `gorm:"serializer:json;type:jsonb" json:"images"`
	ExpiresAt   *time.Time `json:"expires_at"`

	User     User     `gorm:"foreignkey:UserID" json:"-"`
	Category Category `gorm:"foreignkey:CategoryID" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
