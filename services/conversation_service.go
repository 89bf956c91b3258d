package services

import (
	"time"

	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/google/uuid"
)

// ConversationSummary is one entry in a user's conversation list. It is
// derived on every fetch; nothing about it is persisted.
type ConversationSummary struct {
	AdID          uuid.UUID `json:"ad_id"`
	AdTitle       string    `json:"ad_title"`
	User1         uuid.UUID `json:"user1"`
	User2         uuid.UUID `json:"user2"`
	OtherUserID   uuid.UUID `json:"other_user_id"`
	OtherUserName string    `json:"other_user_name"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
}

// SortParticipants orders a participant pair canonically (lexicographic on
// the uuid string form), so both message directions map to the same pair.
func SortParticipants(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if b.String() < a.String() {
		return b, a
	}
	return a, b
}

// ConversationKey derives the identity of a conversation from its ad and
// unordered participant pair.
func ConversationKey(adID, a, b uuid.UUID) string {
	u1, u2 := SortParticipants(a, b)
	return adID.String() + "-" + u1.String() + "-" + u2.String()
}

// GroupConversations collapses a newest-first message list into one summary
// per (ad, participant pair). The first message seen for a key is the most
// recent one, so it becomes the summary's last message. Names and ad titles
// are left unresolved (the raw ids) for ResolveConversations to fill in.
func GroupConversations(messages []models.Message, currentUserID uuid.UUID) []ConversationSummary {
	seen := make(map[string]bool)
	summaries := make([]ConversationSummary, 0, len(messages))

	for _, msg := range messages {
		u1, u2 := SortParticipants(msg.SenderID, msg.ReceiverID)
		key := msg.AdID.String() + "-" + u1.String() + "-" + u2.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		other := u1
		if u1 == currentUserID {
			other = u2
		}
		summaries = append(summaries, ConversationSummary{
			AdID:          msg.AdID,
			AdTitle:       msg.AdID.String(),
			User1:         u1,
			User2:         u2,
			OtherUserID:   other,
			OtherUserName: other.String(),
			LastMessage:   msg.Content,
			LastMessageAt: msg.CreatedAt,
		})
	}
	return summaries
}

// UnreadMessageIDs picks the messages userID has received but not read yet.
// Opening a thread marks exactly these; once they are read the selection is
// empty, so reopening the thread writes nothing.
func UnreadMessageIDs(messages []models.Message, userID uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	for _, msg := range messages {
		if msg.ReceiverID == userID && !msg.IsRead {
			ids = append(ids, msg.ID)
		}
	}
	return ids
}

// ResolveConversations batch-resolves ad titles and counterparty display
// names with one query per table, instead of one per conversation.
func ResolveConversations(summaries []ConversationSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	adIDSet := make(map[uuid.UUID]bool)
	userIDSet := make(map[uuid.UUID]bool)
	for _, s := range summaries {
		adIDSet[s.AdID] = true
		userIDSet[s.OtherUserID] = true
	}

	adIDs := make([]uuid.UUID, 0, len(adIDSet))
	for id := range adIDSet {
		adIDs = append(adIDs, id)
	}
	userIDs := make([]uuid.UUID, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}

	var ads []models.Ad
	if err := database.DB.Select("id, title").Where("id IN ?", adIDs).Find(&ads).Error; err != nil {
		return err
	}
	titles := make(map[uuid.UUID]string, len(ads))
	for _, ad := range ads {
		titles[ad.ID] = ad.Title
	}

	var users []models.User
	if err := database.DB.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName()
	}

	for i := range summaries {
		if title, ok := titles[summaries[i].AdID]; ok {
			summaries[i].AdTitle = title
		}
		if name, ok := names[summaries[i].OtherUserID]; ok {
			summaries[i].OtherUserName = name
		}
	}
	return nil
}
