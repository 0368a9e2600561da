package audit

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// HTML renders the report as a standalone page: the Markdown report
// converted with goldmark inside a small styled shell.
func (r *Report) HTML() ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(r.Markdown()), &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	var page bytes.Buffer
	err := pageTmpl.Execute(&page, pageData{
		Title: fmt.Sprintf("Accessibility audit · %s", r.Theme),
		Body:  template.HTML(body.String()), //nolint:gosec // goldmark output over our own markdown
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return page.Bytes(), nil
}

type pageData struct {
	Title string
	Body  template.HTML
}

var pageTmpl = template.Must(template.New("report").Parse(pageTemplate))

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 56rem; padding: 0 1rem; color: #1f2937; }
h1 { border-bottom: 2px solid #e5e7eb; padding-bottom: .4rem; }
code { background: #f3f4f6; padding: .1rem .3rem; border-radius: 3px; font-size: .9em; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #d1d5db; padding: .45rem .6rem; text-align: left; vertical-align: top; }
th { background: #f9fafb; }
tr td:first-child { white-space: nowrap; font-weight: 600; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`
