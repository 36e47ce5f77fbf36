package controller

import (
	"github.com/google/uuid"

	"github.com/luminaai/lumina/internal/api"
)

// Entry is a timeline slot for one message. Optimistic entries carry
// Pending until the backend confirms the send; a failed send leaves the
// entry in place, pending forever ("sent but unanswered").
type Entry struct {
	// LocalID identifies the entry independently of the backend.
	LocalID string
	Message *api.Message
	Pending bool
}

func newEntry(message *api.Message, pending bool) *Entry {
	return &Entry{
		LocalID: uuid.New().String(),
		Message: message,
		Pending: pending,
	}
}

func entriesFromMessages(messages []*api.Message) []*Entry {
	entries := make([]*Entry, len(messages))
	for i, message := range messages {
		entries[i] = newEntry(message, false)
	}
	return entries
}

// AppendLocal inserts a message at the tail before backend confirmation.
// Used only for the user's own outgoing message.
func (c *Controller) AppendLocal(message *api.Message) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendLocked(message, true)
}

// appendLocalFor inserts an optimistic entry bound to chatID. The entry is
// appended only while chatID is still the active conversation; a send whose
// conversation the user switched away from returns nil and stays out of the
// visible timeline.
func (c *Controller) appendLocalFor(chatID int64, message *api.Message) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeID != chatID {
		log.Info("optimistic append skipped for inactive conversation", "chat_id", chatID, "active_id", c.activeID)
		return nil
	}
	return c.appendLocked(message, true)
}

// AppendConfirmed inserts a backend-confirmed message at the tail.
func (c *Controller) AppendConfirmed(message *api.Message) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendLocked(message, false)
}

// appendLocked appends monotonically: no reordering, no deduplication.
func (c *Controller) appendLocked(message *api.Message, pending bool) *Entry {
	entry := newEntry(message, pending)
	c.entries = append(c.entries, entry)
	return entry
}
