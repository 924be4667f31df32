package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// moversCmd holds the flags for the 'movers' subcommand.
type moversCmd struct {
	losers bool
	all    bool
}

func (*moversCmd) Name() string     { return "movers" }
func (*moversCmd) Synopsis() string { return "display the top gainers or losers" }
func (*moversCmd) Usage() string {
	return `hc movers [-losers] [-all]

  Displays the positions with a gain (default) or a loss, sorted by gain.
  Positions with an unknown gain are never listed.
`
}

func (c *moversCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.losers, "losers", false, "display the losers instead of the gainers")
	f.BoolVar(&c.all, "all", false, "display both gainers and losers")
}

func (c *moversCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.all && c.losers {
		fmt.Fprintln(os.Stderr, "-all and -losers flags cannot be used together")
		return subcommands.ExitUsageError
	}
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	report, private := s.Movers(), isPrivate()
	var m renderer.Movers
	if c.all || !c.losers {
		m.Tables = append(m.Tables, renderer.NewMoverTable("Top Gainers", report.Gainers, private))
	}
	if c.all || c.losers {
		m.Tables = append(m.Tables, renderer.NewMoverTable("Top Losers", report.Losers, private))
	}
	printMarkdown(renderer.RenderMovers(&m))
	return subcommands.ExitSuccess
}
