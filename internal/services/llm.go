package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tutorchat/internal/models"
)

// Completer produces an assistant reply for a conversation. The history
// already includes the user's latest message as its final entry.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error)
}

// ChatService wraps a Completer with level-based prompting and a cap on
// concurrent upstream requests.
type ChatService struct {
	completer Completer
	rateChan  chan struct{} // Token bucket
}

func NewChatService(completer Completer, concurrentReqs int) *ChatService {
	if concurrentReqs < 1 {
		concurrentReqs = 1
	}

	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &ChatService{
		completer: completer,
		rateChan:  rateChan,
	}
}

// acquireRate blocks until a rate slot is available
func (s *ChatService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Minute):
		return fmt.Errorf("timeout waiting for LLM rate slot")
	}
}

func (s *ChatService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Reply asks the provider for the next assistant turn.
func (s *ChatService) Reply(ctx context.Context, level string, history []models.ChatMessage) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	text, err := s.completer.Complete(ctx, BuildSystemPrompt(level), history)
	if err != nil {
		return "", fmt.Errorf("LLM API error: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("LLM API error: provider returned empty reply")
	}
	return text, nil
}
