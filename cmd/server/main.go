package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorchat/internal/config"
	"tutorchat/internal/database"
	"tutorchat/internal/handlers"
	"tutorchat/internal/router"
	"tutorchat/internal/services"
	"tutorchat/internal/store"
)

func main() {
	log.Println("Starting tutorchat server...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	historyTTL := time.Duration(cfg.HistoryTTLMinutes) * time.Minute

	// ──── Step 2: Initialize Conversation Store ────
	var convStore store.ConversationStore
	switch cfg.ChatStore {
	case "redis":
		client, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer client.Close()
		convStore = store.NewRedisStore(client, historyTTL)
		log.Println("✓ Redis conversation store ready")
	case "postgres":
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()
		if err := database.EnsureSchema(pool); err != nil {
			log.Fatalf("✗ Schema setup failed: %v", err)
		}
		convStore = store.NewPostgresStore(pool)
		log.Println("✓ PostgreSQL conversation store ready")
	default:
		convStore = store.NewMemoryStore(historyTTL)
		log.Println("✓ In-memory conversation store ready")
	}

	// ──── Step 3: Initialize LLM Provider ────
	var completer services.Completer
	switch cfg.LLMProvider {
	case "gemini":
		provider, err := services.NewGeminiProvider(cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer provider.Close()
		completer = provider
		log.Println("✓ Gemini client initialized")
	default:
		completer = services.NewOpenAIProvider(cfg.OpenAIAPIKey)
		log.Println("✓ OpenAI client initialized")
	}

	chatService := services.NewChatService(completer, cfg.LLMConcurrentReqs)

	// ──── Step 4: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(convStore, chatService)
	r := router.New(chatHandler, cfg.ChatRequestsPerMin, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ tutorchat ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat endpoint: http://localhost:%s/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
