package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type drilldownCmd struct{}

func (*drilldownCmd) Name() string     { return "drilldown" }
func (*drilldownCmd) Synopsis() string { return "display the transactions of a position" }
func (*drilldownCmd) Usage() string {
	return `hc drilldown <symbol>

  Displays the transactions of the position <symbol>, labeled as on the charts.
`
}

func (c *drilldownCmd) SetFlags(f *flag.FlagSet) {}

func (c *drilldownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "drilldown requires exactly one symbol")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	colors, err := DecodeColors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading colors: %v\n", err)
		return subcommands.ExitFailure
	}

	p, ok := s.Position(symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown symbol %q\n", symbol)
		return subcommands.ExitFailure
	}
	d := holdings.NewDrilldown(p, colors)
	printMarkdown(renderer.RenderDrilldown(renderer.NewDrilldown(d, isPrivate())))
	return subcommands.ExitSuccess
}
