package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

var functions = template.FuncMap{
	// safe marks stored post HTML as trusted; it is sanitized before it is saved.
	"safe": func(s string) template.HTML {
		return template.HTML(s)
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// Load parses every page and partial. Pages are addressed by file name.
func Load() *template.Template {
	return template.Must(template.New("").Funcs(functions).ParseFS(files, "*.html"))
}
