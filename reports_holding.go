package holdings

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// HoldingReport is the list of holdings ranked by market value.
type HoldingReport struct {
	Holdings    []Holding
	TotalValue  float64 // sum of market values
	TotalProfit float64 // sum of gain amounts
}

// Holding is the enriched view of one position.
type Holding struct {
	Symbol      string
	MarketValue float64
	Weight      decimal.Decimal // percent of the report total value
	Gain        *float64        // percent, nil when unknown
	Profit      float64
	BuyPrice    *float64 // average of the lots unit costs, nil without lots
	Shares      float64
	LastPrice   float64
	Currency    string           // upper-cased
	Accounts    []AccountHolding // largest quantity first
}

// AccountHolding is the quantity of a holding in one account.
type AccountHolding struct {
	Name     string
	Type     string
	Quantity float64
}

// NewHoldingReport ranks positions by decreasing market value and enriches
// them with their weight in the portfolio and their split across accounts.
//
// Positions with the same market value keep their relative order.
func NewHoldingReport(positions []Position, accounts []Account) HoldingReport {
	ranked := slices.Clone(positions)
	slices.SortStableFunc(ranked, func(a, b Position) int { return cmp.Compare(b.MarketValue, a.MarketValue) })

	values := make([]float64, len(ranked))
	for i, p := range ranked {
		values[i] = p.MarketValue
	}
	weights := Weights(values)

	r := HoldingReport{Holdings: make([]Holding, 0, len(ranked))}
	for i, p := range ranked {
		symbol := p.Symbol()
		r.Holdings = append(r.Holdings, Holding{
			Symbol:      symbol,
			MarketValue: p.MarketValue,
			Weight:      weights[i],
			Gain:        percentValue(p.GainPercent),
			Profit:      p.GainAmount,
			BuyPrice:    p.AverageCost(),
			Shares:      p.Quantity,
			LastPrice:   p.Security.LastPrice,
			Currency:    displayCurrency(p.Currency()),
			Accounts:    accountHoldings(accounts, symbol),
		})
		r.TotalValue += p.MarketValue
		r.TotalProfit += p.GainAmount
	}
	return r
}

// accountHoldings lists the accounts holding symbol, largest quantity first.
func accountHoldings(accounts []Account, symbol string) []AccountHolding {
	var res []AccountHolding
	for _, a := range accounts {
		p, ok := a.holding(symbol)
		if !ok {
			continue
		}
		res = append(res, AccountHolding{Name: a.Name, Type: a.Type, Quantity: p.Quantity})
	}
	slices.SortStableFunc(res, func(a, b AccountHolding) int { return cmp.Compare(b.Quantity, a.Quantity) })
	return res
}

// Symbols returns the symbols of the report in rank order.
func (r HoldingReport) Symbols() []string {
	res := make([]string, len(r.Holdings))
	for i, h := range r.Holdings {
		res[i] = h.Symbol
	}
	return res
}
