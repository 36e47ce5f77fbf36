// Package controller maintains the client-side chat state: the conversation
// list, the active conversation's message timeline, and the optimistic
// send/receive cycle against the backend.
package controller

import (
	"context"
	"sync"

	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/cache"
	"github.com/luminaai/lumina/internal/debug"
)

var log = debug.GetLogger()

// Backend is the remote surface the controller talks to. *api.Client
// implements it; tests substitute a fake.
type Backend interface {
	ListChats(ctx context.Context) ([]*api.Chat, error)
	CreateChat(ctx context.Context, title string) (*api.Chat, error)
	RenameChat(ctx context.Context, id int64, title string) (*api.Chat, error)
	DeleteChat(ctx context.Context, id int64) error
	ListMessages(ctx context.Context, chatID int64) ([]*api.Message, error)
	SendMessage(ctx context.Context, chatID int64, request *api.SendMessageRequest) (*api.SendMessageResponse, error)
}

// Controller owns the conversation registry, the message timeline of the
// active conversation, and the send coordinator. All exported methods are
// safe for concurrent use; the UI drives them from separate goroutines.
type Controller struct {
	backend Backend
	cache   *cache.Cache

	mu sync.Mutex
	// Registry state.
	chats    []*api.Chat
	activeID int64 // 0 means no active conversation
	// Timeline state, always reflecting the active conversation.
	entries []*Entry
	// Coordinator state.
	sendState      SendState
	inFlightChatID int64
	lastSendErr    error
	// Last credit balance reported by the backend, -1 until known.
	credits int64
}

// Option configures a Controller.
type Option func(*Controller)

// WithCache attaches a local snapshot cache. The registry is primed from it
// at construction and kept in sync after successful backend operations.
func WithCache(c *cache.Cache) Option {
	return func(controller *Controller) {
		controller.cache = c
	}
}

// New instantiates a controller.
func New(backend Backend, options ...Option) *Controller {
	controller := &Controller{
		backend: backend,
		credits: -1,
	}
	for _, option := range options {
		option(controller)
	}
	if controller.cache != nil {
		chats, err := controller.cache.Chats()
		if err != nil {
			log.Warn("priming registry from cache", "error", err)
		} else {
			controller.chats = chats
		}
	}
	return controller
}

// Chats returns a snapshot of the conversation list, newest first.
func (c *Controller) Chats() []*api.Chat {
	c.mu.Lock()
	defer c.mu.Unlock()
	chats := make([]*api.Chat, len(c.chats))
	copy(chats, c.chats)
	return chats
}

// ActiveID returns the active conversation id, 0 when none is active.
func (c *Controller) ActiveID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID
}

// Active returns the active conversation summary, nil when none is active.
func (c *Controller) Active() *api.Chat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findChatLocked(c.activeID)
}

// Entries returns a snapshot of the active conversation's timeline.
func (c *Controller) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]*Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Credits returns the last credit balance reported by the backend, -1 until
// a send has completed.
func (c *Controller) Credits() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.credits
}

// findChatLocked returns the chat with the given id, or nil.
func (c *Controller) findChatLocked(id int64) *api.Chat {
	for _, chat := range c.chats {
		if chat.ID == id {
			return chat
		}
	}
	return nil
}
