package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/arshia84/bazaarche/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// buildChatTestApp wires the send endpoint behind the real JWT middleware.
// The database is intentionally left unconnected: every request in these
// tests must be rejected by validation before any store access.
func buildChatTestApp() *fiber.App {
	os.Setenv("JWT_SECRET", "testsecret")
	app := fiber.New()
	app.Post("/messages", middleware.Protected(), SendMessage)
	return app
}

func signTestToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func postMessage(t *testing.T, app *fiber.App, token string, payload map[string]string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestSendMessageRequiresToken(t *testing.T) {
	app := buildChatTestApp()

	resp := postMessage(t, app, "", map[string]string{
		"ad_id":       uuid.NewString(),
		"receiver_id": uuid.NewString(),
		"content":     "hello",
	})
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		t.Fatalf("expected rejection without a token, got %d", resp.StatusCode)
	}
}

func TestSendMessageRejectsEmptyContent(t *testing.T) {
	app := buildChatTestApp()
	sender := uuid.New()
	token := signTestToken(t, sender)

	for _, content := range []string{"", "   ", "\n\t "} {
		resp := postMessage(t, app, token, map[string]string{
			"ad_id":       uuid.NewString(),
			"receiver_id": uuid.NewString(),
			"content":     content,
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("content %q: status = %d, want 400", content, resp.StatusCode)
		}
	}
}

func TestSendMessageRejectsSelfMessage(t *testing.T) {
	app := buildChatTestApp()
	sender := uuid.New()
	token := signTestToken(t, sender)

	resp := postMessage(t, app, token, map[string]string{
		"ad_id":       uuid.NewString(),
		"receiver_id": sender.String(),
		"content":     "talking to myself",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when sender equals receiver", resp.StatusCode)
	}
}

func TestSendMessageRejectsMissingAdID(t *testing.T) {
	app := buildChatTestApp()
	token := signTestToken(t, uuid.New())

	resp := postMessage(t, app, token, map[string]string{
		"receiver_id": uuid.NewString(),
		"content":     "hello",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when ad_id is missing", resp.StatusCode)
	}
}
