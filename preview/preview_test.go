package preview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	merged := "# Invoice\n\nHello **Ada**.\n\n- 2 x widget\n- 1 x gizmo\n"

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, "Invoice", merged))
	out := buf.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Invoice</title>")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>Ada</strong>")
	assert.Contains(t, out, "<li>2 x widget</li>")
}

func TestRenderCodeHighlighting(t *testing.T) {
	merged := "```go\npackage main\n```\n"

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, "t", merged))

	// Inline chroma styles, not classes.
	assert.Contains(t, buf.String(), "<pre")
	assert.Contains(t, buf.String(), "style=")
}

func TestRenderEscapesTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, "<script>", "text"))
	assert.NotContains(t, buf.String(), "<title><script></title>")
}
