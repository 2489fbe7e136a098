package services

import "strings"

// Tutoring levels. Any level other than "beginner" gets the advanced
// prompt, which mirrors how the widget's level selector has always been
// interpreted server-side.
const (
	LevelBeginner = "beginner"
	LevelAdvanced = "advanced"
)

// NormalizeLevel lowercases the requested level and defaults to beginner
// when none is given.
func NormalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == LevelBeginner {
		return LevelBeginner
	}
	return LevelAdvanced
}

// BuildSystemPrompt returns the tutoring system prompt for a level. The
// formatting rules forbid markdown because replies are rendered as plain
// text; the client strips any markers that slip through anyway.
func BuildSystemPrompt(level string) string {
	var b strings.Builder

	if NormalizeLevel(level) == LevelBeginner {
		b.WriteString("You are an AI tutor. Always explain concepts in very simple, beginner-friendly terms.\n\n")
	} else {
		b.WriteString("You are an AI tutor. Provide advanced, detailed, structured explanations.\n\n")
	}

	b.WriteString(`IMPORTANT FORMATTING RULES:
- Do NOT use any markdown formatting like **bold**, *italic*, or __underline__
- Do NOT use asterisks (*) or underscores (_) for emphasis
- Use plain text only
`)

	if NormalizeLevel(level) == LevelBeginner {
		b.WriteString(`- Start with a clear heading or definition followed by a colon
- Put the main content on the next line after the heading
- Use one blank line between different sections or topics
- Write in short, clear paragraphs
- Use bullet points with hyphens (-) or numbers (1, 2, 3) when helpful

Example format:
Definition of Photosynthesis:
Photosynthesis is the process plants use to make food from sunlight.

How it works:
1. Plants collect sunlight through their leaves
2. They combine sunlight with water and carbon dioxide
3. This creates sugar (food) and oxygen

Why it matters:
This process is important because it gives us the oxygen we breathe.`)
	} else {
		b.WriteString(`- Start with a comprehensive definition or overview followed by a colon
- Organize information into clear sections with headings followed by colons
- Use one blank line between different sections
- Include technical details and examples
- Structure with bullet points using hyphens (-) or numbered lists (1, 2, 3)

Example format:
Cellular Respiration - Advanced Overview:
Cellular respiration is a multi-stage biochemical process that converts glucose into ATP.

The Three Main Stages:
1. Glycolysis - occurs in the cytoplasm
2. Krebs Cycle - occurs in the mitochondrial matrix
3. Electron Transport Chain - occurs on the inner mitochondrial membrane

Significance in Metabolism:
This process is fundamental to all aerobic life forms as it provides the primary energy currency for cellular processes.`)
	}

	return b.String()
}
