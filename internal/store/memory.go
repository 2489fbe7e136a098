package store

import (
	"context"
	"sync"
	"time"

	"tutorchat/internal/models"
)

type conversation struct {
	messages []models.ChatMessage
	lastSeen time.Time
}

// MemoryStore keeps conversations in process memory. This matches the
// default deployment: a conversation lives for the server's lifetime or
// until it sits idle past the TTL.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*conversation
	ttl           time.Duration
}

// NewMemoryStore creates an in-memory store. A positive ttl starts a
// background sweeper that drops conversations idle for longer than ttl;
// ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		conversations: make(map[string]*conversation),
		ttl:           ttl,
	}

	if ttl > 0 {
		// Cleanup goroutine
		go func() {
			for {
				time.Sleep(ttl)
				s.sweep(time.Now())
			}
		}()
	}

	return s
}

func (s *MemoryStore) History(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[chatID]
	if !ok {
		return nil, nil
	}

	out := make([]models.ChatMessage, len(conv.messages))
	copy(out, conv.messages)
	return out, nil
}

func (s *MemoryStore) Append(ctx context.Context, chatID string, msgs ...models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[chatID]
	if !ok {
		conv = &conversation{}
		s.conversations[chatID] = conv
	}
	conv.messages = append(conv.messages, msgs...)
	conv.lastSeen = time.Now()
	return nil
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, conv := range s.conversations {
		if now.Sub(conv.lastSeen) > s.ttl {
			delete(s.conversations, id)
		}
	}
}
