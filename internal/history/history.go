// Package history persists the composer's input history between sessions.
package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

const (
	fileName   = "lumina_chat_history"
	maxEntries = 500
)

// History is the composer's recall buffer. Navigation walks entries newest
// to oldest; the in-progress draft is stashed on the first step back so it
// can be restored when walking forward past the newest entry.
type History struct {
	mu      sync.Mutex
	entries []string
	cursor  int // -1 when not navigating
	draft   string
	path    string
}

// NewHistory loads the persisted history.
func NewHistory() *History {
	h := &History{
		cursor: -1,
		path:   filepath.Join(os.TempDir(), fileName),
	}
	h.load()
	return h
}

// load reads one quoted entry per line; multi-line input stays on one line.
// Unreadable lines are skipped rather than failing the whole file.
func (h *History) load() {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry, err := strconv.Unquote(scanner.Text())
		if err != nil || entry == "" {
			continue
		}
		h.entries = append(h.entries, entry)
	}
	if len(h.entries) > maxEntries {
		h.entries = h.entries[len(h.entries)-maxEntries:]
	}
}

// save is best-effort; losing history is not worth surfacing an error.
func (h *History) save() {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Create(h.path)
	if err != nil {
		return
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, entry := range h.entries {
		writer.WriteString(strconv.Quote(entry) + "\n")
	}
	writer.Flush()
}

// Add records a submitted input and resets navigation. Blank input and a
// repeat of the newest entry are not recorded.
func (h *History) Add(entry string) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return
	}

	h.mu.Lock()
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		h.cursor = -1
		h.draft = ""
		h.mu.Unlock()
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > maxEntries {
		h.entries = h.entries[len(h.entries)-maxEntries:]
	}
	h.cursor = -1
	h.draft = ""
	h.mu.Unlock()

	h.save()
}

// Previous steps back in time. currentInput is stashed on the first step.
// At the oldest entry it keeps returning that entry with ok false.
func (h *History) Previous(currentInput string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case len(h.entries) == 0:
		return "", false
	case h.cursor == -1:
		h.draft = currentInput
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	default:
		return h.entries[0], false
	}
	return h.entries[h.cursor], true
}

// Next steps toward the present; past the newest entry it restores the
// stashed draft and leaves navigation.
func (h *History) Next() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

// Reset abandons navigation; called when the input is edited.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor = -1
	h.draft = ""
}
