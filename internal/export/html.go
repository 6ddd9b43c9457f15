package export

import (
	"bytes"
	"fmt"
	"html/template"

	"sicily/internal/model"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// PageTitle is the <title> of the exported HTML page.
const PageTitle = "Sicily Holiday Planner - Castellammare del Golfo"

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		// Raw HTML in the source is dropped; html.WithUnsafe is never set.
		html.WithHardWraps(),
	),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { --blue: #1E3A8A; --gold: #F59E0B; --sand: #FEF3C7; --sea: #06B6D4; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--sand); color: #1f2937; }
header { background: var(--blue); color: var(--sand); padding: 1.5rem 2rem; }
header h1 { margin: 0; color: var(--gold); }
main { max-width: 60rem; margin: 0 auto; padding: 1rem 2rem 3rem; }
h2 { color: var(--blue); border-bottom: 2px solid var(--gold); padding-bottom: .25rem; }
h3 { color: var(--blue); }
a { color: var(--sea); }
table { border-collapse: collapse; }
td, th { border: 1px solid #d1d5db; padding: .35rem .75rem; text-align: left; }
</style>
</head>
<body>
<header><h1>{{.Heading}}</h1><p>{{.Subtitle}}</p></header>
<main>
{{.Body}}
</main>
</body>
</html>
`))

type page struct {
	Title    string
	Heading  string
	Subtitle string
	Body     template.HTML
}

// HTML renders the trip as a standalone HTML page.
func HTML(trip *model.Trip) ([]byte, error) {
	if trip == nil {
		return nil, fmt.Errorf("failed to render html: no trip")
	}

	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(trip)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, page{
		Title:    PageTitle,
		Heading:  trip.Name,
		Subtitle: trip.Destination + " · " + trip.Region,
		// goldmark output is trusted only because raw HTML is disabled above.
		Body: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute page template: %w", err)
	}
	return out.Bytes(), nil
}
