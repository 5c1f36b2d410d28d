package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/Conceptual-Machines/starter-poem-api/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v card.View) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, PoemCard(v).Render(context.Background(), &buf))
	return buf.String()
}

func TestPoemCard_ErrorHidesPoem(t *testing.T) {
	v := card.New(nil).View()
	v.Status = card.StatusError
	v.Error = "Poem generation failed: <boom>"
	v.Poem = ""

	html := render(t, v)

	assert.Contains(t, html, `data-status="error"`)
	assert.Contains(t, html, "Poem generation failed: &lt;boom&gt;")
	assert.Contains(t, html, `<p class="poem-text" id="poem-text" hidden></p>`)
	assert.NotContains(t, html, "A blank canvas")
}

func TestPoemCard_LoadingDisablesControls(t *testing.T) {
	v := card.New(nil).View()
	v.Status = card.StatusLoading
	v.Disabled = true
	v.ButtonLabel = "Generating..."

	html := render(t, v)

	assert.Contains(t, html, `<button type="button" id="regenerate" disabled>Generating...</button>`)
	assert.Contains(t, html, `disabled><span class="style-label">Haiku</span>`)
}
