package database

import (
	"fmt"
)

var _ ChatRepository = (*ChatRepo)(nil)

// ChatRepo handles database operations for delivery destinations
type ChatRepo struct {
	db *DB
}

func NewChatRepo(db *DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// UpsertChat registers a destination, reactivating it if it was known before.
func (r *ChatRepo) UpsertChat(chatID int64, title, kind string) error {
	_, err := r.db.Exec(`
		INSERT INTO chats (chat_id, title, chat_type, active)
		VALUES (?, ?, ?, 1)
		ON CONFLICT (chat_id) DO UPDATE SET
			title = excluded.title,
			chat_type = excluded.chat_type,
			active = 1
	`, chatID, title, kind)

	if err != nil {
		return fmt.Errorf("failed to upsert chat: %w", err)
	}

	return nil
}

// RemoveChat deregisters a destination. Delete-by-key: removing an unknown
// chat is not an error.
func (r *ChatRepo) RemoveChat(chatID int64) error {
	_, err := r.db.Exec("DELETE FROM chats WHERE chat_id = ?", chatID)
	if err != nil {
		return fmt.Errorf("failed to remove chat: %w", err)
	}
	return nil
}

// GetActiveChats returns all active destinations in registration order.
func (r *ChatRepo) GetActiveChats() ([]Chat, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, title, chat_type, active, added_at
		FROM chats
		WHERE active = 1
		ORDER BY added_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get active chats: %w", err)
	}
	defer rows.Close()

	var chats []Chat
	for rows.Next() {
		var chat Chat
		err := rows.Scan(&chat.ChatID, &chat.Title, &chat.Kind, &chat.Active, &chat.AddedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat row: %w", err)
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat rows: %w", err)
	}

	return chats, nil
}

// GetChatCount returns the number of active destinations
func (r *ChatRepo) GetChatCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM chats WHERE active = 1").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get chat count: %w", err)
	}
	return count, nil
}
