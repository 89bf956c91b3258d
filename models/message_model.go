package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AdID       uuid.UUID `gorm:"not null;index" json:"ad_id"`
	SenderID   uuid.UUID `gorm:"not null;index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`

	Ad       Ad   `gorm:"foreignkey:AdID" json:"-"`
	Sender   User `gorm:"foreignkey:SenderID" json:"-"`
	Receiver User `gorm:"foreignkey:ReceiverID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
