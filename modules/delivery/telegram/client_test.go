package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestGetMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTEST_TOKEN/getMe" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		writeJSON(t, w, APIResponse[User]{
			OK: true,
			Result: User{
				ID:        123,
				IsBot:     true,
				FirstName: "BridgeBot",
				Username:  "bridge_bot",
			},
		})
	}))
	defer srv.Close()

	client := NewClient("TEST_TOKEN", srv.URL)
	user, err := client.GetMe(context.Background())
	if err != nil {
		t.Fatalf("GetMe() error: %v", err)
	}
	if user.ID != 123 {
		t.Errorf("ID = %d, want 123", user.ID)
	}
	if !user.IsBot {
		t.Error("IsBot = false, want true")
	}
	if user.Username != "bridge_bot" {
		t.Errorf("Username = %q, want %q", user.Username, "bridge_bot")
	}
}

func TestSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTOKEN/sendMessage" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var req SendMessageRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		if req.ChatID != 42 {
			t.Errorf("ChatID = %d, want 42", req.ChatID)
		}
		if req.Text != "hello" {
			t.Errorf("Text = %q, want %q", req.Text, "hello")
		}
		if req.LinkPreviewOptions == nil || !req.LinkPreviewOptions.IsDisabled {
			t.Error("LinkPreviewOptions.IsDisabled not set")
		}

		writeJSON(t, w, APIResponse[Message]{
			OK: true,
			Result: Message{
				MessageID: 99,
				Chat:      Chat{ID: 42, Type: "private"},
				Text:      "hello",
			},
		})
	}))
	defer srv.Close()

	client := NewClient("TOKEN", srv.URL)
	msg, err := client.SendMessage(context.Background(), SendMessageRequest{
		ChatID:             42,
		Text:               "hello",
		LinkPreviewOptions: &LinkPreviewOptions{IsDisabled: true},
	})
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if msg.MessageID != 99 {
		t.Errorf("MessageID = %d, want 99", msg.MessageID)
	}
}

func TestSendMessageWireFormat(t *testing.T) {
	var captured map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &captured); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		writeJSON(t, w, APIResponse[Message]{OK: true, Result: Message{MessageID: 1}})
	}))
	defer srv.Close()

	client := NewClient("TOKEN", srv.URL)
	_, err := client.SendMessage(context.Background(), SendMessageRequest{
		ChatID:             7,
		MessageThreadID:    3,
		Text:               "hello",
		LinkPreviewOptions: &LinkPreviewOptions{IsDisabled: true},
	})
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}

	want := []string{"chat_id", "message_thread_id", "text", "link_preview_options"}
	if len(captured) != len(want) {
		t.Errorf("request has %d fields, want %d: %v", len(captured), len(want), captured)
	}
	for _, field := range want {
		if _, ok := captured[field]; !ok {
			t.Errorf("request missing field %q", field)
		}
	}
	if string(captured["chat_id"]) != "7" {
		t.Errorf("chat_id = %s, want 7", captured["chat_id"])
	}
	if string(captured["message_thread_id"]) != "3" {
		t.Errorf("message_thread_id = %s, want 3", captured["message_thread_id"])
	}
	if string(captured["link_preview_options"]) != `{"is_disabled":true}` {
		t.Errorf("link_preview_options = %s, want {\"is_disabled\":true}", captured["link_preview_options"])
	}
}

func TestSendMessageOmitsZeroThread(t *testing.T) {
	var captured map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		writeJSON(t, w, APIResponse[Message]{OK: true, Result: Message{MessageID: 1}})
	}))
	defer srv.Close()

	client := NewClient("TOKEN", srv.URL)
	_, err := client.SendMessage(context.Background(), SendMessageRequest{ChatID: 7, Text: "hello"})
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if _, ok := captured["message_thread_id"]; ok {
		t.Error("message_thread_id present in request without a thread")
	}
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(t, w, APIResponse[json.RawMessage]{
			OK:          false,
			ErrorCode:   400,
			Description: "Bad Request: chat not found",
		})
	}))
	defer srv.Close()

	client := NewClient("TOKEN", srv.URL)
	_, err := client.SendMessage(context.Background(), SendMessageRequest{
		ChatID: 999,
		Text:   "hello",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Code != 400 {
		t.Errorf("Code = %d, want 400", apiErr.Code)
	}
	if apiErr.Description != "Bad Request: chat not found" {
		t.Errorf("Description = %q, want %q", apiErr.Description, "Bad Request: chat not found")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Code: 401, Description: "Unauthorized"}
	want := "telegram: 401 Unauthorized"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.defaults()

	if cfg.HealthCheckInterval != 60 {
		t.Errorf("HealthCheckInterval = %d, want 60", cfg.HealthCheckInterval)
	}
	if cfg.APIURL != "https://api.telegram.org" {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, "https://api.telegram.org")
	}
}

func TestConfigDefaultsPreservesValues(t *testing.T) {
	cfg := Config{HealthCheckInterval: 10, APIURL: "https://custom.api.example.com"}
	cfg.defaults()

	if cfg.HealthCheckInterval != 10 {
		t.Errorf("HealthCheckInterval = %d, want 10", cfg.HealthCheckInterval)
	}
	if cfg.APIURL != "https://custom.api.example.com" {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, "https://custom.api.example.com")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Token: "123:abc-DEF", HealthCheckInterval: 60, APIURL: "https://api.telegram.org"}, false},
		{"bad token format", Config{Token: "not-a-token", HealthCheckInterval: 60, APIURL: "https://api.telegram.org"}, true},
		{"bad api url", Config{Token: "123:abc", HealthCheckInterval: 60, APIURL: "ftp://example.com"}, true},
		{"zero interval", Config{Token: "123:abc", HealthCheckInterval: 0, APIURL: "https://api.telegram.org"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
