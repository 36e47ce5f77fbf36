package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()
	return &History{
		cursor: -1,
		path:   filepath.Join(t.TempDir(), "history"),
	}
}

func TestAddAndNavigate(t *testing.T) {
	h := newTestHistory(t)
	h.Add("first")
	h.Add("second")
	h.Add("third")

	entry, ok := h.Previous("draft")
	require.True(t, ok)
	assert.Equal(t, "third", entry)

	entry, ok = h.Previous("draft")
	require.True(t, ok)
	assert.Equal(t, "second", entry)

	entry, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, "third", entry)

	// Walking past the newest entry restores the stashed draft.
	entry, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, "draft", entry)
}

func TestPreviousStopsAtOldest(t *testing.T) {
	h := newTestHistory(t)
	h.Add("only")

	entry, ok := h.Previous("")
	require.True(t, ok)
	assert.Equal(t, "only", entry)

	entry, ok = h.Previous("")
	assert.False(t, ok)
	assert.Equal(t, "only", entry)
}

func TestAddSkipsBlankAndDuplicate(t *testing.T) {
	h := newTestHistory(t)
	h.Add("   ")
	h.Add("hello")
	h.Add("hello")

	assert.Len(t, h.entries, 1)
}

func TestNextWithoutNavigation(t *testing.T) {
	h := newTestHistory(t)
	h.Add("entry")

	_, ok := h.Next()
	assert.False(t, ok)
}

func TestResetClearsNavigation(t *testing.T) {
	h := newTestHistory(t)
	h.Add("first")
	h.Add("second")

	_, ok := h.Previous("draft")
	require.True(t, ok)
	h.Reset()

	entry, ok := h.Previous("new draft")
	require.True(t, ok)
	assert.Equal(t, "second", entry)
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := &History{cursor: -1, path: path}
	h.Add("multi\nline entry")
	h.Add(`back\slash "quoted"`)

	reloaded := &History{cursor: -1, path: path}
	reloaded.load()

	require.Len(t, reloaded.entries, 2)
	assert.Equal(t, "multi\nline entry", reloaded.entries[0])
	assert.Equal(t, `back\slash "quoted"`, reloaded.entries[1])
}

func TestLoadSkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := &History{cursor: -1, path: path}
	h.Add("kept")

	// Corrupt the file with an unquoted line; the valid entry survives.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	require.NoError(t, err)
	_, err = file.WriteString("not a quoted line\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	reloaded := &History{cursor: -1, path: path}
	reloaded.load()
	require.Len(t, reloaded.entries, 1)
	assert.Equal(t, "kept", reloaded.entries[0])
}
