package controller

import (
	"context"
	"sort"
	"strings"

	"github.com/luminaai/lumina/internal/api"
)

const (
	titleRuneLimit   = 30
	titleSuffix      = "..."
	placeholderTitle = "New chat"
)

// DeriveTitle builds a conversation title from seed text: the first 30
// characters plus an ellipsis when truncated, or a placeholder when empty.
func DeriveTitle(seed string) string {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return placeholderTitle
	}
	runes := []rune(seed)
	if len(runes) <= titleRuneLimit {
		return seed
	}
	return string(runes[:titleRuneLimit]) + titleSuffix
}

// Refresh fetches all conversations and replaces the local collection,
// sorted newest first. If nothing was active and the result is non-empty,
// the newest conversation becomes active and its timeline is loaded.
// On failure the existing local state is preserved untouched.
func (c *Controller) Refresh(ctx context.Context) error {
	chats, err := c.backend.ListChats(ctx)
	if err != nil {
		return err
	}
	sortChats(chats)

	c.mu.Lock()
	c.chats = chats
	selected := int64(0)
	if c.activeID == 0 && len(chats) > 0 {
		selected = chats[0].ID
	}
	c.mu.Unlock()

	c.cachePutChats(chats)

	if selected != 0 {
		return c.SetActive(ctx, selected)
	}
	return nil
}

// Create requests a new conversation titled from seedTitle, inserts it at
// the head of the list and makes it active with an empty timeline. Returns
// the new conversation's id. No local insertion occurs on failure.
func (c *Controller) Create(ctx context.Context, seedTitle string) (int64, error) {
	chat, err := c.backend.CreateChat(ctx, DeriveTitle(seedTitle))
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.chats = append([]*api.Chat{chat}, c.chats...)
	c.activeID = chat.ID
	c.entries = nil
	c.mu.Unlock()

	c.cacheUpsertChat(chat)
	return chat.ID, nil
}

// Rename updates a conversation's title in place; the list order is
// unchanged. A blank title is a no-op and no request is issued. The local
// title is left unchanged on failure.
func (c *Controller) Rename(ctx context.Context, id int64, newTitle string) error {
	if strings.TrimSpace(newTitle) == "" {
		return nil
	}
	renamed, err := c.backend.RenameChat(ctx, id, newTitle)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if chat := c.findChatLocked(id); chat != nil {
		chat.Title = renamed.Title
	}
	c.mu.Unlock()

	c.cacheUpsertChat(renamed)
	return nil
}

// Remove deletes a conversation. Confirmation is the caller's concern. If
// the removed conversation was active, the active selection and the
// timeline are cleared. No local removal occurs on failure.
func (c *Controller) Remove(ctx context.Context, id int64) error {
	if err := c.backend.DeleteChat(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	chats := c.chats[:0:0]
	for _, chat := range c.chats {
		if chat.ID != id {
			chats = append(chats, chat)
		}
	}
	c.chats = chats
	if c.activeID == id {
		c.activeID = 0
		c.entries = nil
	}
	c.mu.Unlock()

	c.cacheDeleteChat(id)
	return nil
}

// SetActive switches the active conversation, loading its timeline. Passing
// 0 clears the selection and the timeline without issuing a request. When the
// backend load fails, a cached snapshot of the conversation is shown instead
// when one exists; without one, the prior selection and timeline are
// preserved and the error is surfaced.
func (c *Controller) SetActive(ctx context.Context, id int64) error {
	if id == 0 {
		c.mu.Lock()
		c.activeID = 0
		c.entries = nil
		c.mu.Unlock()
		return nil
	}

	messages, err := c.backend.ListMessages(ctx, id)
	if err != nil {
		if cached := c.cachedMessages(id); len(cached) > 0 {
			log.Warn("loading messages, showing cached snapshot", "chat_id", id, "error", err)
			c.mu.Lock()
			c.activeID = id
			c.entries = entriesFromMessages(cached)
			c.mu.Unlock()
			return nil
		}
		return err
	}

	c.mu.Lock()
	c.activeID = id
	c.entries = entriesFromMessages(messages)
	c.mu.Unlock()

	c.cachePutMessages(id, messages)
	return nil
}

func sortChats(chats []*api.Chat) {
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].CreatedAt.After(chats[j].CreatedAt.Time)
	})
}

// Cache writes are best-effort; failures are logged, never surfaced.
func (c *Controller) cachePutChats(chats []*api.Chat) {
	if c.cache == nil {
		return
	}
	if err := c.cache.PutChats(chats); err != nil {
		log.Warn("caching chats", "error", err)
	}
}

func (c *Controller) cacheUpsertChat(chat *api.Chat) {
	if c.cache == nil {
		return
	}
	if err := c.cache.UpsertChat(chat); err != nil {
		log.Warn("caching chat", "error", err)
	}
}

func (c *Controller) cacheDeleteChat(id int64) {
	if c.cache == nil {
		return
	}
	if err := c.cache.DeleteChat(id); err != nil {
		log.Warn("evicting cached chat", "error", err)
	}
}

func (c *Controller) cachePutMessages(chatID int64, messages []*api.Message) {
	if c.cache == nil {
		return
	}
	if err := c.cache.PutMessages(chatID, messages); err != nil {
		log.Warn("caching messages", "error", err)
	}
}

func (c *Controller) cachedMessages(chatID int64) []*api.Message {
	if c.cache == nil {
		return nil
	}
	messages, err := c.cache.Messages(chatID)
	if err != nil {
		log.Warn("reading cached messages", "chat_id", chatID, "error", err)
		return nil
	}
	return messages
}
