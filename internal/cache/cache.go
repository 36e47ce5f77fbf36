package cache

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/luminaai/lumina/internal/api"
)

// Cache implements a SQLite snapshot of the last-synced conversations and
// messages. It exists so the client can show stale-but-valid state before
// the first refresh completes; every operation is best-effort and callers
// treat failures as non-fatal.
type Cache struct {
	db *sql.DB
}

// Open the cache database inside the given directory.
func Open(directory string) (*Cache, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}
	db, err := sql.Open("sqlite", filepath.Join(directory, "cache.db"))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS chats (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS messages (
			chat_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			thinking TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			PRIMARY KEY (chat_id, position)
		);
	`)
	if err != nil {
		return nil, errors.Wrap(err, "creating tables")
	}

	return &Cache{db: db}, nil
}

// PutChats replaces the cached conversation list.
func (c *Cache) PutChats(chats []*api.Chat) error {
	tx, err := c.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM chats`); err != nil {
		return errors.Wrap(err, "clearing chats")
	}
	for _, chat := range chats {
		_, err := tx.Exec(
			`INSERT INTO chats (id, title, created_at) VALUES (?, ?, ?)`,
			chat.ID, chat.Title, chat.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return errors.Wrap(err, "inserting chat")
		}
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

// UpsertChat inserts or updates a single conversation summary.
func (c *Cache) UpsertChat(chat *api.Chat) error {
	_, err := c.db.Exec(
		`REPLACE INTO chats (id, title, created_at) VALUES (?, ?, ?)`,
		chat.ID, chat.Title, chat.CreatedAt.Format(time.RFC3339Nano),
	)
	return errors.Wrap(err, "upserting chat")
}

// DeleteChat removes a conversation and its messages from the cache.
func (c *Cache) DeleteChat(id int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM messages WHERE chat_id = ?`, id); err != nil {
		return errors.Wrap(err, "deleting messages")
	}
	if _, err := tx.Exec(`DELETE FROM chats WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "deleting chat")
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

// Chats returns the cached conversation list, newest first.
func (c *Cache) Chats() ([]*api.Chat, error) {
	rows, err := c.db.Query(`SELECT id, title, created_at FROM chats ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying chats")
	}
	defer rows.Close()

	var chats []*api.Chat
	for rows.Next() {
		chat := &api.Chat{}
		var createdAt string
		if err := rows.Scan(&chat.ID, &chat.Title, &createdAt); err != nil {
			return nil, errors.Wrap(err, "scanning chat row")
		}
		timestamp, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, errors.Wrap(err, "parsing chat timestamp")
		}
		chat.CreatedAt = api.NewTime(timestamp)
		chats = append(chats, chat)
	}
	return chats, errors.Wrap(rows.Err(), "iterating chat rows")
}

// PutMessages replaces the cached message history of a conversation.
func (c *Cache) PutMessages(chatID int64, messages []*api.Message) error {
	tx, err := c.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM messages WHERE chat_id = ?`, chatID); err != nil {
		return errors.Wrap(err, "clearing messages")
	}
	for position, message := range messages {
		_, err := tx.Exec(
			`INSERT INTO messages (chat_id, position, role, content, thinking, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			chatID, position, message.Role, message.Content, message.Thinking,
			message.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return errors.Wrap(err, "inserting message")
		}
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

// Messages returns the cached message history of a conversation, in order.
func (c *Cache) Messages(chatID int64) ([]*api.Message, error) {
	rows, err := c.db.Query(
		`SELECT role, content, thinking, created_at FROM messages WHERE chat_id = ? ORDER BY position`,
		chatID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying messages")
	}
	defer rows.Close()

	var messages []*api.Message
	for rows.Next() {
		message := &api.Message{}
		var createdAt string
		if err := rows.Scan(&message.Role, &message.Content, &message.Thinking, &createdAt); err != nil {
			return nil, errors.Wrap(err, "scanning message row")
		}
		timestamp, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, errors.Wrap(err, "parsing message timestamp")
		}
		message.CreatedAt = api.NewTime(timestamp)
		messages = append(messages, message)
	}
	return messages, errors.Wrap(rows.Err(), "iterating message rows")
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}
