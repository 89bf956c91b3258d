package models

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;uniqueIndex:idx_favorites_user_ad" json:"user_id"`
	AdID   uuid.UUID `gorm:"not null;uniqueIndex:idx_favorites_user_ad" json:"ad_id"`

	User User `gorm:"foreignkey:UserID" json:"-"`
	Ad   Ad   `gorm:"foreignkey:AdID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
