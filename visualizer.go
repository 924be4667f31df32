package holdings

import (
	"fmt"
	"net/url"
	"strings"
)

// visualizerBase is the backtesting page with its fixed analysis parameters:
// maximum time period, 10000 initial amount, no cash flows, inflation adjusted,
// quarterly rebalancing and reinvested dividends.
const visualizerBase = "https://www.portfoliovisualizer.com/backtest-portfolio?s=y&timePeriod=4&initialAmount=10000&annualOperation=0&annualAdjustment=0&inflationAdjusted=true&annualPercentage=0.0&frequency=4&rebalanceType=1&showYield=false&reinvestDividends=true"

// Param is a query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters.
type Params []Param

// Encode returns the parameters as a query string, in order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}

// Get returns the value of the first parameter named key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// VisualizerParams encodes the allocation of the holdings as
// symbol1=<SYM>&allocation1_1=<PCT>&symbol2=...
//
// Weights are the holdings' market values normalized to exactly 100 over the
// whole report, the last holding absorbing the rounding residual.
func VisualizerParams(r HoldingReport) Params {
	values := make([]float64, len(r.Holdings))
	for i, h := range r.Holdings {
		values[i] = h.MarketValue
	}
	weights := Weights(values)

	params := make(Params, 0, 2*len(r.Holdings))
	for i, h := range r.Holdings {
		n := i + 1
		params = append(params,
			Param{Key: fmt.Sprintf("symbol%d", n), Value: h.Symbol},
			Param{Key: fmt.Sprintf("allocation%d_1", n), Value: weights[i].String()},
		)
	}
	return params
}

// VisualizerURL returns the link to backtest the portfolio in its current allocation.
func VisualizerURL(r HoldingReport) string {
	return visualizerBase + "&" + VisualizerParams(r).Encode() + "#analysisResults"
}
