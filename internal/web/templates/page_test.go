package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/starter-poem-api/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoemCardPage_WrapsCard(t *testing.T) {
	v := card.New(nil).View()

	var buf bytes.Buffer
	require.NoError(t, PoemCardPage(v).Render(context.Background(), &buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Punchcut Starter App</title>")
	assert.Contains(t, html, ".style-option.selected{")
	assert.Contains(t, html, `id="poem-styles"`)
	assert.Contains(t, html, `fetch("/api/poem"`)
	assert.Equal(t, 1, strings.Count(html, `id="poem-card"`))
	assert.True(t, strings.HasSuffix(html, "</script></body></html>"))
}

func TestPoemCard_EscapesValues(t *testing.T) {
	v := card.New(nil).View()
	v.Title = `<b>"Starter"</b>`
	v.Styles[1].Description = `say "hi" & leave`

	html := render(t, v)

	assert.Contains(t, html, `<h2 class="card-title">&lt;b&gt;&#34;Starter&#34;&lt;/b&gt;</h2>`)
	assert.Contains(t, html, `title="say &#34;hi&#34; &amp; leave"`)
	assert.Contains(t, html, `value="42"`)
	assert.NotContains(t, html, "<b>")
}
