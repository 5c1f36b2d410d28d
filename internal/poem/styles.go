// Package poem holds the static style catalog and prompt construction for
// the starter-app poem.
package poem

// PoemStyle describes one poetic voice the generator can be asked to use
type PoemStyle struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Poet        string `json:"poet"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// catalog is ordered for display; the first entry is the default
var catalog = []PoemStyle{
	{
		ID:          "free-verse",
		Label:       "Free Verse",
		Poet:        "Maya Angelou",
		Description: "Expressive and powerful",
		Instruction: "Write in the style of Maya Angelou — free verse, powerful imagery, warm and uplifting. " +
			"Use vivid metaphors and a rhythmic, confident voice. 4–8 lines.",
	},
	{
		ID:          "haiku",
		Label:       "Haiku",
		Poet:        "Matsuo Bashō",
		Description: "Minimal and contemplative",
		Instruction: "Write in the style of Matsuo Bashō — a traditional haiku (5-7-5 syllable structure, 3 lines). " +
			"Capture a single vivid moment with nature imagery. Be serene and contemplative.",
	},
	{
		ID:          "sonnet",
		Label:       "Sonnet",
		Poet:        "Shakespeare",
		Description: "Dramatic and lyrical",
		Instruction: "Write in the style of Shakespeare — a short excerpt of a sonnet (4–6 lines) with iambic pentameter, " +
			"rhyming couplets, and dramatic flair. Use 'thee' and 'thou' sparingly for flavor.",
	},
	{
		ID:          "limerick",
		Label:       "Limerick",
		Poet:        "Edward Lear",
		Description: "Witty and playful",
		Instruction: "Write in the style of Edward Lear — a limerick (5 lines, AABBA rhyme scheme). " +
			"Be humorous, whimsical, and lighthearted. Make it fun and clever.",
	},
	{
		ID:          "beat",
		Label:       "Beat",
		Poet:        "Allen Ginsberg",
		Description: "Raw and energetic",
		Instruction: "Write in the style of Allen Ginsberg and the Beat poets — raw, energetic, stream-of-consciousness. " +
			"Use long lines, exclamation, and rebellious optimism. 4–6 lines.",
	},
	{
		ID:          "romantic",
		Label:       "Romantic",
		Poet:        "Emily Dickinson",
		Description: "Intimate and mysterious",
		Instruction: "Write in the style of Emily Dickinson — short dashes, slant rhyme, intimate and mysterious tone. " +
			"Capitalize important Nouns for emphasis. 4–6 lines.",
	},
}

// Styles returns the catalog in display order. The slice is a copy.
func Styles() []PoemStyle {
	out := make([]PoemStyle, len(catalog))
	copy(out, catalog)
	return out
}

// DefaultStyle returns the style used when none (or an unknown one) is requested
func DefaultStyle() PoemStyle {
	return catalog[0]
}

// LookupStyle finds a style by exact id
func LookupStyle(id string) (PoemStyle, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return PoemStyle{}, false
}

// ResolveStyle returns the style matching id, falling back to the default.
// It never fails.
func ResolveStyle(id string) PoemStyle {
	if s, ok := LookupStyle(id); ok {
		return s
	}
	return DefaultStyle()
}
