package api

import (
	"fmt"
	"strings"
	"time"
)

// Message roles used by the backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Model identifiers accepted by the backend.
const (
	ModelGemini = "gemini"
	ModelOpenAI = "openai"
)

// Models lists the supported model identifiers.
func Models() []string {
	return []string{ModelGemini, ModelOpenAI}
}

// Chat is a conversation summary as returned by the backend.
type Chat struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedAt Time   `json:"created_at"`
}

// Message is a single chat message as returned by the backend.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Thinking  string `json:"thinking,omitempty"`
	CreatedAt Time   `json:"created_at"`
}

// SendMessageRequest is the body of POST /chats/{id}/messages.
type SendMessageRequest struct {
	Content      string `json:"content"`
	ModelType    string `json:"model_type"`
	ThinkingMode bool   `json:"thinking_mode"`
}

// SendMessageResponse is the backend's reply to a message send.
type SendMessageResponse struct {
	UserMessage      *Message `json:"user_message"`
	AssistantMessage *Message `json:"assistant_message"`
	RemainingCredits int64    `json:"remaining_credits"`
}

// Time wraps time.Time to accept the backend's naive ISO timestamps
// (no timezone suffix) in addition to RFC 3339.
type Time struct {
	time.Time
}

const naiveLayout = "2006-01-02T15:04:05.999999999"

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(naiveLayout, s)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}
