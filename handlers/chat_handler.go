package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	config "github.com/arshia84/bazaarche/configs"
	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/arshia84/bazaarche/services"
	"github.com/arshia84/bazaarche/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GetConversations aggregates all of the caller's messages into distinct
// two-party, single-ad conversations, newest first.
func GetConversations(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var messages []models.Message
	if err := database.DB.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch conversations"})
	}

	summaries := services.GroupConversations(messages, userID)
	if err := services.ResolveConversations(summaries); err != nil {
		log.Printf("Error resolving conversation labels: %v", err)
	}

	return c.JSON(summaries)
}

type ThreadResponse struct {
	Messages  []models.Message `json:"messages"`
	OtherUser fiber.Map        `json:"other_user"`
}

// GetConversationThread returns the full message thread for one
// conversation, ascending, and marks the caller's unread messages as read.
func GetConversationThread(c *fiber.Ctx) error {
	userID := currentUserID(c)

	adID, err := uuid.Parse(c.Query("ad_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ad id"})
	}
	peerID, err := uuid.Parse(c.Query("peer_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid peer id"})
	}
	if peerID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot open a conversation with yourself"})
	}

	pair := []uuid.UUID{userID, peerID}
	var messages []models.Message
	if err := database.DB.
		Where("ad_id = ? AND sender_id IN ? AND receiver_id IN ?", adID, pair, pair).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	// Mark received messages as read in one batch, then refresh the badge.
	unreadIDs := services.UnreadMessageIDs(messages, userID)
	if len(unreadIDs) > 0 {
		if err := database.DB.
			Model(&models.Message{}).
			Where("id IN ?", unreadIDs).
			Update("is_read", true).Error; err != nil {
			log.Printf("Error marking messages as read: %v", err)
		} else {
			for i := range messages {
				if messages[i].ReceiverID == userID {
					messages[i].IsRead = true
				}
			}
			pushUnreadCount(userID)
		}
	}

	otherUser := fiber.Map{"id": peerID, "name": peerID.String()}
	var peer models.User
	if err := database.DB.First(&peer, "id = ?", peerID).Error; err == nil {
		otherUser["name"] = peer.DisplayName()
	}

	return c.JSON(ThreadResponse{Messages: messages, OtherUser: otherUser})
}

type SendMessageRequest struct {
	AdID       string `json:"ad_id" validate:"required,uuid"`
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required"`
}

// SendMessage validates and inserts a chat message. All validation happens
// before any database access; a rejected message never reaches the store.
func SendMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	adID, _ := uuid.Parse(req.AdID)
	receiverID, _ := uuid.Parse(req.ReceiverID)
	if receiverID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot send a message to yourself"})
	}

	message := models.Message{
		AdID:       adID,
		SenderID:   userID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	websocket.NotifyUser(receiverID, "new_message", message)
	pushUnreadCount(receiverID)

	return c.Status(fiber.StatusCreated).JSON(message)
}

func GetUnreadCount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	count, err := unreadCount(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count messages"})
	}

	return c.JSON(fiber.Map{"count": count})
}

func unreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := database.DB.
		Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// pushUnreadCount recomputes a user's unread badge and pushes it over the
// websocket, so clients never track the count incrementally.
func pushUnreadCount(userID uuid.UUID) {
	count, err := unreadCount(userID)
	if err != nil {
		log.Printf("Error counting unread messages for %s: %v", userID, err)
		return
	}
	websocket.NotifyUser(userID, "unread_count", fiber.Map{"count": count})
}

// ServeWs authenticates a websocket client and keeps it registered with the
// hub for push events until the connection closes. The socket is push-only;
// messages are sent over the REST endpoint.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		log.Printf("WebSocket auth failed: %v", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket closed for client %s: %v", userID, err)
			} else {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
