package services

import (
	"testing"
	"time"

	"github.com/arshia84/bazaarche/models"
	"github.com/google/uuid"
)

var (
	adA   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	adB   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	userX = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	userY = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	userZ = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
)

func msg(ad, sender, receiver uuid.UUID, content string, age time.Duration) models.Message {
	return models.Message{
		ID:         uuid.New(),
		AdID:       ad,
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  time.Now().Add(-age),
	}
}

func TestConversationKeyIgnoresDirection(t *testing.T) {
	if ConversationKey(adA, userX, userY) != ConversationKey(adA, userY, userX) {
		t.Error("key must not depend on who sent and who received")
	}
	if ConversationKey(adA, userX, userY) == ConversationKey(adB, userX, userY) {
		t.Error("same pair on different ads must have different keys")
	}
}

func TestSortParticipantsCanonical(t *testing.T) {
	a1, b1 := SortParticipants(userX, userY)
	a2, b2 := SortParticipants(userY, userX)
	if a1 != a2 || b1 != b2 {
		t.Errorf("SortParticipants is not order independent: (%s,%s) vs (%s,%s)", a1, b1, a2, b2)
	}
	if a1.String() > b1.String() {
		t.Error("participants are not in lexicographic order")
	}
}

func TestGroupConversationsBothDirectionsOneThread(t *testing.T) {
	// Newest first, as the conversation fetch orders them.
	messages := []models.Message{
		msg(adA, userY, userX, "sure, still available", time.Hour),
		msg(adA, userX, userY, "is this still available?", 2*time.Hour),
	}

	summaries := GroupConversations(messages, userX)
	if len(summaries) != 1 {
		t.Fatalf("got %d conversations, want 1", len(summaries))
	}

	s := summaries[0]
	if s.LastMessage != "sure, still available" {
		t.Errorf("last message = %q, want the newest message", s.LastMessage)
	}
	if s.OtherUserID != userY {
		t.Errorf("other user = %s, want %s", s.OtherUserID, userY)
	}
	u1, u2 := SortParticipants(userX, userY)
	if s.User1 != u1 || s.User2 != u2 {
		t.Errorf("participants not canonical: got (%s,%s)", s.User1, s.User2)
	}
}

func TestGroupConversationsSeparatesAdsAndPeers(t *testing.T) {
	messages := []models.Message{
		msg(adA, userY, userX, "about the bike", time.Hour),
		msg(adB, userX, userY, "about the phone", 2*time.Hour),
		msg(adA, userZ, userX, "me too", 3*time.Hour),
		msg(adA, userX, userY, "older bike message", 4*time.Hour),
	}

	summaries := GroupConversations(messages, userX)
	if len(summaries) != 3 {
		t.Fatalf("got %d conversations, want 3", len(summaries))
	}

	// Order follows the newest-first input.
	if summaries[0].AdID != adA || summaries[0].LastMessage != "about the bike" {
		t.Errorf("first summary = %+v, want the bike thread with its newest message", summaries[0])
	}
	if summaries[1].AdID != adB {
		t.Errorf("second summary ad = %s, want %s", summaries[1].AdID, adB)
	}
	if summaries[2].OtherUserID != userZ {
		t.Errorf("third summary peer = %s, want %s", summaries[2].OtherUserID, userZ)
	}
}

func TestGroupConversationsEmpty(t *testing.T) {
	if got := GroupConversations(nil, userX); len(got) != 0 {
		t.Errorf("got %d conversations from no messages", len(got))
	}
}

func TestDisplayNameFallback(t *testing.T) {
	nick := "sara_22"
	u := models.User{ID: userX, FullName: "Sara Ahmadi", Nickname: &nick}
	if u.DisplayName() != "sara_22" {
		t.Errorf("DisplayName = %q, want nickname", u.DisplayName())
	}

	u.Nickname = nil
	if u.DisplayName() != "Sara Ahmadi" {
		t.Errorf("DisplayName = %q, want full name", u.DisplayName())
	}

	u.FullName = ""
	if u.DisplayName() != userX.String() {
		t.Errorf("DisplayName = %q, want raw id", u.DisplayName())
	}
}

func TestUnreadMessageIDs(t *testing.T) {
	received := msg(adA, userY, userX, "hi", time.Minute)
	receivedRead := msg(adA, userY, userX, "earlier", time.Hour)
	receivedRead.IsRead = true
	sent := msg(adA, userX, userY, "hello", 30*time.Second)
	messages := []models.Message{received, receivedRead, sent}

	ids := UnreadMessageIDs(messages, userX)
	if len(ids) != 1 || ids[0] != received.ID {
		t.Fatalf("UnreadMessageIDs = %v, want exactly [%s]", ids, received.ID)
	}
}

// Marking a thread read twice must not select anything the second time.
func TestUnreadMessageIDsIdempotent(t *testing.T) {
	messages := []models.Message{
		msg(adA, userY, userX, "one", 3*time.Minute),
		msg(adA, userY, userX, "two", 2*time.Minute),
		msg(adA, userX, userY, "reply", time.Minute),
	}

	first := UnreadMessageIDs(messages, userX)
	if len(first) != 2 {
		t.Fatalf("first pass selected %d messages, want 2", len(first))
	}

	for i := range messages {
		if messages[i].ReceiverID == userX {
			messages[i].IsRead = true
		}
	}

	if second := UnreadMessageIDs(messages, userX); len(second) != 0 {
		t.Fatalf("second pass selected %d messages, want 0", len(second))
	}
}
