package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug  string    `gorm:"size:100;not null;unique" json:"slug"`
	Name  string    `gorm:"size:255;not null" json:"name"`
	Icon  string    `gorm:"size:50" json:"icon"`
	Color string    `gorm:"size:30" json:"color"`

	CreatedAt time.Time `json:"created_at"`
}
