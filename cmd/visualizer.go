package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

type visualizerCmd struct{}

func (*visualizerCmd) Name() string     { return "visualizer" }
func (*visualizerCmd) Synopsis() string { return "print the link to backtest the current allocation" }
func (*visualizerCmd) Usage() string {
	return `hc visualizer

  Prints the portfolio backtesting URL of the current allocation.
`
}

func (c *visualizerCmd) SetFlags(f *flag.FlagSet) {}

func (c *visualizerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(holdings.VisualizerURL(s.Holdings()))
	return subcommands.ExitSuccess
}
