package models

// Role values for chat messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single stored turn in a conversation.
type ChatMessage struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	MessageID string `json:"message_id"`
}

// ChatRequest is the payload sent to the chat endpoint.
// ChatID is empty on the first turn; the server mints one.
type ChatRequest struct {
	Message string `json:"message"`
	Level   string `json:"level"`
	ChatID  string `json:"chat_id"`
}

// ChatReply carries the assistant's answer.
type ChatReply struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

// ChatResponse is the success envelope from the chat endpoint.
type ChatResponse struct {
	ChatID string    `json:"chat_id"`
	Reply  ChatReply `json:"reply"`
}

// ErrorResponse is the failure envelope. The error field is a plain string,
// which is what widget clients key on to distinguish failure from success.
type ErrorResponse struct {
	Error string `json:"error"`
}
