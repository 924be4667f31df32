package holdings

import (
	"cmp"
	"slices"
)

// Mover is a position seen through its gain.
type Mover struct {
	Symbol      string
	GainPercent float64 // percent
	GainAmount  float64
}

// MoversReport partitions the positions of a portfolio into gainers and losers.
type MoversReport struct {
	Gainers []Mover
	Losers  []Mover
}

// Movers selects the positions with a positive gain (gainers) or with a
// negative or zero gain (losers).
//
// Both partitions are sorted by increasing signed gain: the smallest gain comes
// first among gainers, the worst loss first among losers. Positions whose gain
// is unknown belong to neither partition. An empty result is valid.
func Movers(positions []Position, gainers bool) []Mover {
	var selected []Position
	for _, p := range positions {
		if p.GainPercent == nil {
			continue
		}
		if (*p.GainPercent > 0) == gainers {
			selected = append(selected, p)
		}
	}
	slices.SortStableFunc(selected, func(a, b Position) int { return cmp.Compare(*a.GainPercent, *b.GainPercent) })

	res := make([]Mover, 0, len(selected))
	for _, p := range selected {
		res = append(res, Mover{
			Symbol:      p.Symbol(),
			GainPercent: *p.GainPercent * 100,
			GainAmount:  p.GainAmount,
		})
	}
	return res
}

// NewMoversReport computes both partitions at once.
func NewMoversReport(positions []Position) MoversReport {
	return MoversReport{
		Gainers: Movers(positions, true),
		Losers:  Movers(positions, false),
	}
}
