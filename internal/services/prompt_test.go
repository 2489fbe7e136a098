package services

import (
	"strings"
	"testing"
)

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty defaults to beginner", "", LevelBeginner},
		{"beginner stays beginner", "beginner", LevelBeginner},
		{"uppercase beginner", "BEGINNER", LevelBeginner},
		{"advanced stays advanced", "advanced", LevelAdvanced},
		{"unknown levels are advanced", "expert", LevelAdvanced},
		{"whitespace trimmed", "  beginner  ", LevelBeginner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLevel(tc.input); got != tc.expected {
				t.Errorf("NormalizeLevel(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestBuildSystemPrompt_SelectsLevel(t *testing.T) {
	beginner := BuildSystemPrompt("beginner")
	advanced := BuildSystemPrompt("advanced")

	if !strings.Contains(beginner, "beginner-friendly") {
		t.Error("Beginner prompt missing beginner framing")
	}
	if !strings.Contains(advanced, "advanced, detailed, structured") {
		t.Error("Advanced prompt missing advanced framing")
	}
	if beginner == advanced {
		t.Error("Levels produced identical prompts")
	}
}

func TestBuildSystemPrompt_ForbidsMarkdown(t *testing.T) {
	for _, level := range []string{"beginner", "advanced"} {
		prompt := BuildSystemPrompt(level)
		if !strings.Contains(prompt, "Do NOT use any markdown formatting") {
			t.Errorf("%s prompt missing no-markdown rule", level)
		}
		if !strings.Contains(prompt, "Use plain text only") {
			t.Errorf("%s prompt missing plain-text rule", level)
		}
	}
}
