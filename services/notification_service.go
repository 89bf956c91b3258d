package services

import (
	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/arshia84/bazaarche/websocket"
	"github.com/google/uuid"
)

// CreateNotification persists an in-app notification and pushes it to the
// user's websocket if they are connected.
func CreateNotification(userID uuid.UUID, ntype, title, message string, data map[string]interface{}) error {
	notification := models.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		return err
	}

	websocket.NotifyUser(userID, "notification", notification)
	return nil
}
