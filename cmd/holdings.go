package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display holdings ranked by market value" }
func (*holdingsCmd) Usage() string {
	return `hc holdings

  Displays every position with its weight in the portfolio, its gain and its split across accounts.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderHoldings(renderer.NewHoldings(s.Holdings(), isPrivate())))
	return subcommands.ExitSuccess
}
