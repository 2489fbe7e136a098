package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lines of non-viewport chrome: header, input, help, separators.
const chromeHeight = 4

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	levelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	typingStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Tutor Chat"))
	b.WriteString(levelStyle.Render("  ·  level: " + levels[m.levelIdx] + " (tab to switch)"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send · tab level · esc quit"))
	return b.String()
}

// renderLog styles the entries: user messages right-aligned, assistant
// messages left-aligned, the typing placeholder dimmed.
func (m Model) renderLog() string {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		switch {
		case e.Typing:
			blocks = append(blocks, typingStyle.Render(m.spinner.View()+" Tutor is typing..."))
		case e.FromUser:
			bubble := userStyle.Render("You: " + e.Text)
			blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble))
		default:
			blocks = append(blocks, assistantStyle.Render("Tutor: "+e.Text))
		}
	}
	return strings.Join(blocks, "\n\n")
}
