package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminaai/lumina/internal/api"
)

func TestAppendIsMonotonic(t *testing.T) {
	c := New(newFakeBackend())

	first := c.AppendLocal(&api.Message{Role: api.RoleUser, Content: "one"})
	second := c.AppendConfirmed(&api.Message{Role: api.RoleAssistant, Content: "two"})
	third := c.AppendLocal(&api.Message{Role: api.RoleUser, Content: "three"})

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []*Entry{first, second, third}, entries)
}

func TestAppendDoesNotDeduplicate(t *testing.T) {
	c := New(newFakeBackend())

	message := &api.Message{Role: api.RoleUser, Content: "same"}
	first := c.AppendLocal(message)
	second := c.AppendLocal(message)

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.NotEqual(t, first.LocalID, second.LocalID)
}

func TestPendingFlags(t *testing.T) {
	c := New(newFakeBackend())

	local := c.AppendLocal(&api.Message{Role: api.RoleUser, Content: "out"})
	confirmed := c.AppendConfirmed(&api.Message{Role: api.RoleAssistant, Content: "in"})

	assert.True(t, local.Pending)
	assert.False(t, confirmed.Pending)
}
