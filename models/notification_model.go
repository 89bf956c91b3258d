package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeInfo     = "info"
	NotificationTypeSuccess  = "success"
	NotificationTypeWarning  = "warning"
	NotificationTypeError    = "error"
	NotificationTypeAdStatus = "ad_status"
	NotificationTypeSystem   = "system"
)

type Notification struct {
	ID      uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID              `gorm:"not null;index" json:"user_id"`
	Type    string                 `gorm:"size:20;not null;default:'info'" json:"type"`
	Title   string                 `gorm:"size:255;not null" json:"title"`
	Message string                 `gorm:"type:text;not null" json:"message"`
	IsRead  bool                   `gorm:"not null;default:false" json:"is_read"`
	Data    map[string]interface{} `gorm:"serializer:json;type:jsonb" json:"data"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
