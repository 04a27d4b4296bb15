package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_Paragraph(t *testing.T) {
	assert.Equal(t, "<p>Test content</p>\n", RenderMarkdown("Test content"))
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	src := "# Title\n\nSome *emphasis* and a [link](https://example.com)."
	assert.Equal(t, RenderMarkdown(src), RenderMarkdown(src))
}

func TestRenderMarkdown_Formatting(t *testing.T) {
	out := RenderMarkdown("# Heading\n\n**bold**")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Heading</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderMarkdown_StripsScripts(t *testing.T) {
	out := RenderMarkdown("hello <script>alert(1)</script>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestRenderMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
}

func TestRenderMarkdown_StoredHTMLRoundTrip(t *testing.T) {
	stored := RenderMarkdown("Test content")
	assert.Equal(t, stored, RenderMarkdown(stored))
}
