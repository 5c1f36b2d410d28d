package poem

import (
	"strings"
	"unicode/utf8"
)

const (
	// Input is the user-turn text sent alongside the style instructions
	Input = "Write a poem about this starter app in the style described in your instructions."

	personaDirective = "You are a creative poet."
	subjectContext   = "The subject of the poem is: a starter app for people new to programming. " +
		"It has basic features including AI, a clear structure to build on, and is meant to be a skeleton " +
		"they can play with and extend. The tone should be warm, encouraging, and inviting—make people " +
		"excited to start building!"
	outputDirective = "Output only the poem, no title or explanation."

	charsPerToken = 4
)

// BuildInstructions assembles the system instructions for a style
func BuildInstructions(style PoemStyle) string {
	var b strings.Builder
	b.WriteString(personaDirective)
	b.WriteString(" ")
	b.WriteString(style.Instruction)
	b.WriteString("\n\n")
	b.WriteString(subjectContext)
	b.WriteString("\n\n")
	b.WriteString(outputDirective)
	return b.String()
}

// EstimateTokens is a rough prompt size estimate (4 characters per token,
// rounded up). Characters, not bytes.
func EstimateTokens(text string) int {
	return (utf8.RuneCountInString(text) + charsPerToken - 1) / charsPerToken
}
