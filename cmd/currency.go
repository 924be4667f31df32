package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "display the cash and stocks composition per currency" }
func (*currencyCmd) Usage() string {
	return `hc currency

  Displays the portfolio split into cash and stocks buckets per currency.
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderCurrency(renderer.NewCurrency(s.Composition(), isPrivate())))
	return subcommands.ExitSuccess
}
