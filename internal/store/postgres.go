package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tutorchat/internal/models"
)

// PostgresStore persists conversation history in the chat_messages table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) History(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT role, content, message_id
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY id
	`, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to read history for %s: %w", chatID, err)
	}
	defer rows.Close()

	var msgs []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.Role, &msg.Content, &msg.MessageID); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

func (s *PostgresStore) Append(ctx context.Context, chatID string, msgs ...models.ChatMessage) error {
	for _, msg := range msgs {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO chat_messages (chat_id, role, content, message_id)
			VALUES ($1, $2, $3, $4)
		`, chatID, msg.Role, msg.Content, msg.MessageID)
		if err != nil {
			return fmt.Errorf("failed to append history for %s: %w", chatID, err)
		}
	}
	return nil
}
