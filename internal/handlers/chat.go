package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tutorchat/internal/models"
	"tutorchat/internal/services"
	"tutorchat/internal/store"
)

type ChatHandler struct {
	store store.ConversationStore
	chat  *services.ChatService
}

func NewChatHandler(convStore store.ConversationStore, chat *services.ChatService) *ChatHandler {
	return &ChatHandler{
		store: convStore,
		chat:  chat,
	}
}

// AskTutor handles one turn of a tutoring conversation.
func (h *ChatHandler) AskTutor(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "field 'message' is required")
		return
	}

	chatID := req.ChatID
	if chatID == "" {
		chatID = uuid.NewString()
	}

	userMsg := models.ChatMessage{
		Role:      models.RoleUser,
		Content:   req.Message,
		MessageID: uuid.NewString(),
	}
	if err := h.store.Append(r.Context(), chatID, userMsg); err != nil {
		log.Printf("chat %s: failed to store user message: %v", chatID, err)
		writeError(w, http.StatusInternalServerError, "failed to store conversation")
		return
	}

	history, err := h.store.History(r.Context(), chatID)
	if err != nil {
		log.Printf("chat %s: failed to load history: %v", chatID, err)
		writeError(w, http.StatusInternalServerError, "failed to load conversation")
		return
	}

	reply, err := h.chat.Reply(r.Context(), req.Level, history)
	if err != nil {
		log.Printf("chat %s: %v", chatID, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	assistantMsg := models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   reply,
		MessageID: uuid.NewString(),
	}
	if err := h.store.Append(r.Context(), chatID, assistantMsg); err != nil {
		log.Printf("chat %s: failed to store assistant message: %v", chatID, err)
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		ChatID: chatID,
		Reply: models.ChatReply{
			MessageID: assistantMsg.MessageID,
			Content:   assistantMsg.Content,
		},
	})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
