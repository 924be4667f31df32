package cmd

import (
	"github.com/etnz/holdings"
	"github.com/etnz/holdings/chart"
	"github.com/etnz/holdings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	kinds := make(predict.Set, 0, len(chart.Kinds))
	for _, k := range chart.Kinds {
		kinds = append(kinds, string(k))
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"snapshot":       predict.Files("*.json"),
			"colors":         predict.Files("*.json"),
			"private":        predict.Nothing,
			"positions-path": predict.Something,
			"accounts-path":  predict.Something,
		},
		Sub: map[string]*complete.Command{
			"holdings": {},
			"currency": {},
			"movers": {Flags: map[string]complete.Predictor{
				"losers": predict.Nothing,
				"all":    predict.Nothing,
			}},
			"drilldown":  {Args: complete.PredictFunc(predictSymbols)},
			"visualizer": {},
			"chart": {Flags: map[string]complete.Predictor{
				"kind":      kinds,
				"drilldown": predict.Nothing,
			}},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(docs.Names()),
			},
		},
	}
}

// predictSymbols completes with the symbols of the snapshot.
func predictSymbols(prefix string) []string {
	s, err := holdings.LoadSnapshot(snapshotLocation(), snapshotPaths())
	if err != nil {
		return nil
	}
	return s.Holdings().Symbols()
}
