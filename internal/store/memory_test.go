package store

import (
	"context"
	"testing"
	"time"

	"tutorchat/internal/models"
)

func TestMemoryStore_AppendAndHistory(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	if err := s.Append(ctx, "abc", models.ChatMessage{Role: models.RoleUser, Content: "hi", MessageID: "m1"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(ctx, "abc", models.ChatMessage{Role: models.RoleAssistant, Content: "hello", MessageID: "m2"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	msgs, err := s.History(ctx, "abc")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleUser || msgs[1].Role != models.RoleAssistant {
		t.Errorf("Messages out of order: %+v", msgs)
	}
}

func TestMemoryStore_UnknownChatIsEmpty(t *testing.T) {
	s := NewMemoryStore(0)

	msgs, err := s.History(context.Background(), "nope")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("Expected empty history, got %d messages", len(msgs))
	}
}

func TestMemoryStore_ConversationsAreIsolated(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	s.Append(ctx, "a", models.ChatMessage{Role: models.RoleUser, Content: "first"})
	s.Append(ctx, "b", models.ChatMessage{Role: models.RoleUser, Content: "second"})

	msgs, _ := s.History(ctx, "a")
	if len(msgs) != 1 || msgs[0].Content != "first" {
		t.Errorf("Conversation a polluted: %+v", msgs)
	}
}

func TestMemoryStore_HistoryReturnsCopy(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	s.Append(ctx, "abc", models.ChatMessage{Role: models.RoleUser, Content: "original"})

	msgs, _ := s.History(ctx, "abc")
	msgs[0].Content = "mutated"

	again, _ := s.History(ctx, "abc")
	if again[0].Content != "original" {
		t.Error("History exposed internal slice")
	}
}

func TestMemoryStore_SweepDropsIdleConversations(t *testing.T) {
	s := NewMemoryStore(0)
	s.ttl = time.Minute
	ctx := context.Background()

	s.Append(ctx, "old", models.ChatMessage{Role: models.RoleUser, Content: "hi"})
	s.Append(ctx, "fresh", models.ChatMessage{Role: models.RoleUser, Content: "hi"})

	s.mu.Lock()
	s.conversations["old"].lastSeen = time.Now().Add(-2 * time.Minute)
	s.mu.Unlock()

	s.sweep(time.Now())

	if msgs, _ := s.History(ctx, "old"); len(msgs) != 0 {
		t.Error("Idle conversation survived sweep")
	}
	if msgs, _ := s.History(ctx, "fresh"); len(msgs) != 1 {
		t.Error("Active conversation was swept")
	}
}
