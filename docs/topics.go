// Package docs holds the help topics of hc, embedded in the binary.
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var files embed.FS

// Topic is one page of documentation.
type Topic struct {
	Name    string
	Summary string
}

// Topics lists the documented topics in reading order.
var Topics = []Topic{
	{"snapshot", "the snapshot file read by every command"},
	{"charts", "the chart options printed by `hc chart`"},
	{"weights", "how weights are rounded so that they always sum to 100%"},
	{"colors", "the transaction color table"},
	{"configuration", "flags, environment variables and shell completion"},
}

// Names returns the names of the topics.
func Names() []string {
	names := make([]string, len(Topics))
	for i, t := range Topics {
		names[i] = t.Name
	}
	return names
}

// Index returns the list of topics as markdown.
func Index() string {
	var b strings.Builder
	b.WriteString("# hc\n\n")
	b.WriteString("`hc` turns a portfolio snapshot into charts and reports: holdings ranked by\n")
	b.WriteString("market value, the cash and stocks split per currency, the top gainers and\n")
	b.WriteString("losers, and the transactions of each position.\n\n")
	b.WriteString("Run `hc topic <topic>` to read one of these topics, or `hc topic '*'` for all of them:\n\n")
	for _, t := range Topics {
		fmt.Fprintf(&b, "* %s: %s\n", t.Name, t.Summary)
	}
	return b.String()
}

// Get returns the named topics concatenated. No name returns the Index, and
// "*" stands for every topic.
func Get(names ...string) (string, error) {
	if len(names) == 0 {
		return Index(), nil
	}
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			expanded = Names()
		}
		for _, n := range expanded {
			content, err := files.ReadFile(n + ".md")
			if err != nil {
				return "", fmt.Errorf("topic %q not found: %w", n, err)
			}
			b.Write(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
