package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"tutorchat/internal/client"
	"tutorchat/internal/tui"
)

func main() {
	godotenv.Load()

	baseURL := os.Getenv("TUTORCHAT_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	c := client.New(baseURL)

	p := tea.NewProgram(tui.New(c.Send), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
