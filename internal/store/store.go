// Package store persists per-conversation chat history, keyed by chat ID.
package store

import (
	"context"

	"tutorchat/internal/models"
)

// ConversationStore holds the message history of every conversation.
// Implementations must be safe for concurrent use.
type ConversationStore interface {
	// History returns the conversation's messages in append order.
	// An unknown chat ID yields an empty history, not an error.
	History(ctx context.Context, chatID string) ([]models.ChatMessage, error)

	// Append adds messages to the end of the conversation.
	Append(ctx context.Context, chatID string, msgs ...models.ChatMessage) error
}
