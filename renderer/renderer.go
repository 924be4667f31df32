package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFiles embed.FS

// templates holds the report templates. A template named "x.md" is an
// assembly; "x_part.md" is one of its partials.
var templates, _ = fs.Sub(templateFiles, "templates")

// RenderHoldings renders the holdings report to markdown.
func RenderHoldings(h *Holdings) string {
	partials := map[string]string{
		"holdings_table": "holdings_table.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, h)
}

// RenderCurrency renders the currency composition to markdown.
func RenderCurrency(c *Currency) string {
	partials := map[string]string{
		"currency_table": "currency_table.md",
	}
	return renderTemplate("currency", "currency.md", partials, c)
}

// RenderMovers renders the gainers and losers tables to markdown.
func RenderMovers(m *Movers) string {
	partials := map[string]string{
		"movers_table": "movers_table.md",
	}
	return renderTemplate("movers", "movers.md", partials, m)
}

// RenderDrilldown renders the transactions of one position to markdown.
func RenderDrilldown(d *Drilldown) string {
	partials := map[string]string{
		"drilldown_table": "drilldown_table.md",
	}
	return renderTemplate("drilldown", "drilldown.md", partials, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
