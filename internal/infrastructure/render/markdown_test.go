package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	r := NewMarkdownRenderer()

	out, err := r.Render("# Title\n\nSome **bold** text.")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestMarkdownRenderer_StripsScripts(t *testing.T) {
	r := NewMarkdownRenderer()

	out, err := r.Render("hello <script>alert(1)</script> world\n\n<img src=x onerror=alert(1)>")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, "hello")
}

func TestMarkdownRenderer_GFMTables(t *testing.T) {
	r := NewMarkdownRenderer()

	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")

	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}
