package telegram

import "fmt"

// User represents a Telegram user or bot, as returned by getMe.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Chat represents a Telegram chat.
type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

// Message represents a Telegram message, as returned by sendMessage.
type Message struct {
	MessageID       int    `json:"message_id"`
	Chat            Chat   `json:"chat"`
	Date            int    `json:"date"`
	Text            string `json:"text,omitempty"`
	MessageThreadID int    `json:"message_thread_id,omitempty"`
}

// LinkPreviewOptions controls link-preview generation for outbound messages.
type LinkPreviewOptions struct {
	IsDisabled bool `json:"is_disabled"`
}

// APIResponse is the generic wrapper returned by the Telegram Bot API.
type APIResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// APIError represents an error returned by the Telegram Bot API.
type APIError struct {
	Code        int    `json:"error_code"`
	Description string `json:"description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %d %s", e.Code, e.Description)
}
