package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/chart"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	kind      string
	drilldown bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "print the options of a chart as JSON" }
func (*chartCmd) Usage() string {
	return `hc chart [-kind <kind>] [-drilldown]

  Prints the chart options, ready to be passed to the charting engine.
  Kinds are holdings, pie, currency, gainers and losers.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", string(chart.HoldingsChart), "chart to print")
	f.BoolVar(&c.drilldown, "drilldown", false, "include the transactions of every holding")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := chart.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
		return subcommands.ExitUsageError
	}

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

	a := &chart.Assembler{PrivateMode: isPrivate(), Drilldown: c.drilldown, Colors: colors}
	opts, err := a.Build(kind, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building chart: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding chart: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
