// Package holdings turns a snapshot of a personal investment portfolio into
// the data behind its charts.
//
// The input is the flat list of positions and accounts delivered by the data
// loader (see DecodeSnapshot). The package provides stateless aggregations over
// it:
//   - Holdings: one ranked record per position, weighted by market value.
//   - Composition: cash and stock values grouped by currency.
//   - Movers: positions partitioned into gainers and losers.
//   - Drilldowns: the transactions of each position, labeled for display.
//   - VisualizerURL: the allocation of the portfolio encoded for an external
//     backtesting service.
//
// Every percentage set produced here goes through Normalize, so that the
// displayed weights always sum to exactly 100.
//
// Nothing is cached and no input is ever modified: calling an aggregation twice
// on the same snapshot yields the same result.
package holdings
