package controller

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/luminaai/lumina/internal/api"
)

// SendState is the coordinator's state machine position.
type SendState int

const (
	SendIdle SendState = iota
	SendSending
	SendFailed
)

// String implements fmt.Stringer.
func (s SendState) String() string {
	switch s {
	case SendIdle:
		return "idle"
	case SendSending:
		return "sending"
	case SendFailed:
		return "failed"
	}
	return "unknown"
}

// Sentinel errors for dropped send requests. Callers treat both as silent
// no-ops: empty input and in-flight sends are rejected, never queued.
var (
	ErrEmptyInput   = errors.New("empty input")
	ErrSendInFlight = errors.New("a send is already in flight")
)

// IsDropped reports whether err marks a send request that was silently
// dropped rather than executed.
func IsDropped(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrSendInFlight)
}

// SendOptions carries the per-send request knobs.
type SendOptions struct {
	Model        string
	ThinkingMode bool
}

// SendState returns the coordinator's current state.
func (c *Controller) SendState() SendState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendState
}

// LastSendError returns the error of the most recent failed send, nil when
// the coordinator is not in the failed state.
func (c *Controller) LastSendError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSendErr
}

// Send runs the full send cycle: ensure a conversation exists, append the
// user message optimistically, issue the backend request and reconcile the
// assistant's reply. The optimistic user entry is never rolled back, even
// on failure. Both sides of the exchange are bound to the conversation id
// captured here; if the active conversation changes while the cycle is
// outstanding, neither message is spliced into the now-active timeline and
// the exchange is reconciled into the captured conversation only.
func (c *Controller) Send(ctx context.Context, text string, options SendOptions) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInput
	}

	// Single-flight guard: a second send while one is outstanding is
	// rejected, not queued.
	c.mu.Lock()
	if c.sendState == SendSending {
		c.mu.Unlock()
		return ErrSendInFlight
	}
	c.sendState = SendSending
	c.lastSendErr = nil
	chatID := c.activeID
	c.mu.Unlock()

	// No active conversation: create one seeded with the message text
	// before anything is appended.
	if chatID == 0 {
		createdID, err := c.Create(ctx, text)
		if err != nil {
			c.failSend(err)
			return err
		}
		chatID = createdID
	}

	userMessage := &api.Message{
		Role:      api.RoleUser,
		Content:   text,
		CreatedAt: api.NewTime(time.Now().UTC()),
	}

	// The optimistic append lands in the visible timeline only while the
	// captured conversation is still the active one.
	userEntry := c.appendLocalFor(chatID, userMessage)

	c.mu.Lock()
	c.inFlightChatID = chatID
	c.mu.Unlock()

	response, err := c.backend.SendMessage(ctx, chatID, &api.SendMessageRequest{
		Content:      text,
		ModelType:    options.Model,
		ThinkingMode: options.ThinkingMode,
	})
	if err != nil {
		c.failSend(err)
		return err
	}

	c.mu.Lock()
	if userEntry != nil {
		userEntry.Pending = false
	}
	c.credits = response.RemainingCredits
	if c.activeID == chatID {
		if response.AssistantMessage != nil {
			c.appendLocked(response.AssistantMessage, false)
		}
	} else {
		// The user switched away mid-send. The reply belongs to the
		// captured conversation; it is not spliced into the now-active
		// timeline.
		log.Info("send completed for inactive conversation", "chat_id", chatID, "active_id", c.activeID)
	}
	c.sendState = SendIdle
	c.inFlightChatID = 0
	c.mu.Unlock()

	c.reconcileCache(ctx, chatID)
	return nil
}

// failSend transitions the coordinator to the failed state. Failed is not
// sticky: the next Send attempt proceeds through the normal rules.
func (c *Controller) failSend(err error) {
	c.mu.Lock()
	c.sendState = SendFailed
	c.lastSendErr = err
	c.inFlightChatID = 0
	c.mu.Unlock()
}

// reconcileCache refreshes the cached history of the conversation a send
// just completed against, so an inactive conversation's reply survives.
func (c *Controller) reconcileCache(ctx context.Context, chatID int64) {
	if c.cache == nil {
		return
	}
	messages, err := c.backend.ListMessages(ctx, chatID)
	if err != nil {
		log.Warn("reconciling cache after send", "chat_id", chatID, "error", err)
		return
	}
	c.cachePutMessages(chatID, messages)
}
