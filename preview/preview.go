// Package preview renders merged Markdown output as a standalone HTML page,
// with GFM support and syntax highlighting via goldmark + chroma. Useful for
// eyeballing a merge result before sending it anywhere.
package preview

import (
	"bytes"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem;
       font-family: ui-sans-serif, system-ui, sans-serif; line-height: 1.6; }
pre { padding: 1rem; border-radius: 6px; overflow-x: auto; }
code { font-family: ui-monospace, monospace; font-size: 0.9em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #cbd5e1; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

// Renderer converts merged Markdown text to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates a preview Renderer with goldmark configured for GFM and
// syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // merged templates may carry raw HTML
		),
	)

	return &Renderer{
		md:   md,
		tmpl: template.Must(template.New("page").Parse(page)),
	}
}

type pageData struct {
	Title string
	Body  template.HTML
}

// Render converts the merged Markdown text and writes the full page to w.
func (r *Renderer) Render(w io.Writer, title, merged string) error {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(merged), &body); err != nil {
		return err
	}
	return r.tmpl.Execute(w, pageData{Title: title, Body: template.HTML(body.String())})
}
