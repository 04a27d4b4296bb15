package utils

import (
	"bytes"
	"html/template"
	"log"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in author markdown is let through goldmark; bluemonday is what
// makes the output safe.
var (
	markdown  = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	sanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts author markdown into sanitized HTML. It never fails:
// on a converter error the escaped source is returned as a paragraph.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		log.Printf("markdown conversion failed: %v", err)
		return "<p>" + template.HTMLEscapeString(source) + "</p>\n"
	}
	return sanitizer.Sanitize(buf.String())
}
