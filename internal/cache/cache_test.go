package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminaai/lumina/internal/api"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPutChatsReplacesAndOrdersNewestFirst(t *testing.T) {
	c := newTestCache(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, c.PutChats([]*api.Chat{
		{ID: 1, Title: "older", CreatedAt: api.NewTime(base)},
		{ID: 2, Title: "newer", CreatedAt: api.NewTime(base.Add(time.Hour))},
	}))

	chats, err := c.Chats()
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, int64(2), chats[0].ID)
	assert.Equal(t, "newer", chats[0].Title)
	assert.True(t, chats[0].CreatedAt.Equal(base.Add(time.Hour)))

	// A second put fully replaces the previous snapshot.
	require.NoError(t, c.PutChats([]*api.Chat{
		{ID: 3, Title: "only", CreatedAt: api.NewTime(base)},
	}))
	chats, err = c.Chats()
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, int64(3), chats[0].ID)
}

func TestUpsertChat(t *testing.T) {
	c := newTestCache(t)
	now := time.Now().UTC()

	require.NoError(t, c.UpsertChat(&api.Chat{ID: 1, Title: "first", CreatedAt: api.NewTime(now)}))
	require.NoError(t, c.UpsertChat(&api.Chat{ID: 1, Title: "renamed", CreatedAt: api.NewTime(now)}))

	chats, err := c.Chats()
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "renamed", chats[0].Title)
}

func TestMessagesRoundTripPreservesOrder(t *testing.T) {
	c := newTestCache(t)
	now := time.Now().UTC()

	require.NoError(t, c.PutMessages(5, []*api.Message{
		{Role: api.RoleUser, Content: "question", CreatedAt: api.NewTime(now)},
		{Role: api.RoleAssistant, Content: "answer", Thinking: "let me think", CreatedAt: api.NewTime(now)},
	}))

	messages, err := c.Messages(5)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, api.RoleUser, messages[0].Role)
	assert.Equal(t, "question", messages[0].Content)
	assert.Equal(t, "let me think", messages[1].Thinking)

	// Histories are keyed by conversation.
	messages, err = c.Messages(6)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestDeleteChatEvictsMessages(t *testing.T) {
	c := newTestCache(t)
	now := time.Now().UTC()

	require.NoError(t, c.UpsertChat(&api.Chat{ID: 1, Title: "doomed", CreatedAt: api.NewTime(now)}))
	require.NoError(t, c.PutMessages(1, []*api.Message{
		{Role: api.RoleUser, Content: "hi", CreatedAt: api.NewTime(now)},
	}))

	require.NoError(t, c.DeleteChat(1))

	chats, err := c.Chats()
	require.NoError(t, err)
	assert.Empty(t, chats)
	messages, err := c.Messages(1)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
