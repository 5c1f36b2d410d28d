package poem

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesOrderAndUniqueness(t *testing.T) {
	styles := Styles()
	require.Len(t, styles, 6)

	ids := make([]string, 0, len(styles))
	seen := map[string]bool{}
	for _, s := range styles {
		assert.False(t, seen[s.ID], "duplicate style id %s", s.ID)
		seen[s.ID] = true
		ids = append(ids, s.ID)
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.Poet)
		assert.NotEmpty(t, s.Instruction)
	}
	assert.Equal(t, []string{"free-verse", "haiku", "sonnet", "limerick", "beat", "romantic"}, ids)
}

func TestStylesReturnsCopy(t *testing.T) {
	styles := Styles()
	styles[0].Instruction = "mutated"

	assert.NotEqual(t, "mutated", Styles()[0].Instruction)
	assert.NotEqual(t, "mutated", DefaultStyle().Instruction)
}

func TestResolveStyleMatchesEveryCatalogEntry(t *testing.T) {
	for _, s := range Styles() {
		assert.Equal(t, s, ResolveStyle(s.ID))
	}
}

func TestResolveStyleFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "unknown", "HAIKU", " haiku"} {
		t.Run(id, func(t *testing.T) {
			assert.Equal(t, DefaultStyle(), ResolveStyle(id))
		})
	}
	assert.Equal(t, "free-verse", DefaultStyle().ID)
}

func TestLookupStyle(t *testing.T) {
	s, ok := LookupStyle("limerick")
	require.True(t, ok)
	assert.Equal(t, "Edward Lear", s.Poet)

	_, ok = LookupStyle("ode")
	assert.False(t, ok)
}

func TestBuildInstructions(t *testing.T) {
	haiku := ResolveStyle("haiku")
	instructions := BuildInstructions(haiku)

	assert.True(t, strings.HasPrefix(instructions, "You are a creative poet. "+haiku.Instruction))
	assert.Contains(t, instructions, "starter app for people new to programming")
	assert.True(t, strings.HasSuffix(instructions, "Output only the poem, no title or explanation."))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
	// multibyte characters count once
	assert.Equal(t, 1, EstimateTokens("ō—é"))
	assert.Equal(t, 2, EstimateTokens("Bashō"))
}

func TestErrorMessages(t *testing.T) {
	cfgErr := &ConfigurationError{Setting: "OPENAI_API_KEY"}
	assert.True(t, strings.HasPrefix(cfgErr.Error(), "OPENAI_API_KEY is not set."))

	empty := &ProviderError{EmptyOutput: true, Message: "Model response status: incomplete"}
	assert.Equal(t, "Poem generation failed: Model response status: incomplete", empty.Error())

	cause := errors.New("dial tcp: connection refused")
	transport := &ProviderError{Err: cause}
	assert.Equal(t, cause.Error(), transport.Error())
	assert.ErrorIs(t, transport, cause)

	assert.Equal(t, "Unknown error occurred", (&ProviderError{}).Error())

	malformed := &MalformedRequestError{Err: cause}
	assert.ErrorIs(t, malformed, cause)
}
