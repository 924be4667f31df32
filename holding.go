package holdings

// Investment is a lot of a position, with its own cost basis.
type Investment struct {
	BookValue float64 `json:"book_value"`
	Quantity  float64 `json:"quantity"`
}

// unitCost returns the cost of one share of the lot, false when the lot has no quantity.
func (i Investment) unitCost() (float64, bool) {
	if i.Quantity == 0 {
		return 0, false
	}
	return i.BookValue / i.Quantity, true
}

// Position is the holding of one security across the whole portfolio.
//
// Investments and Transactions are kept in the order delivered, transactions
// being chronological.
type Position struct {
	Security     Security      `json:"security"`
	MarketValue  float64       `json:"market_value"`
	Quantity     float64       `json:"quantity"`
	GainAmount   float64       `json:"gain_amount"`
	GainPercent  *float64      `json:"gain_percent,omitempty"` // ratio, 0.1 is 10%; nil when unknown.
	Investments  []Investment  `json:"investments"`
	Transactions []Transaction `json:"transactions"`
}

// Symbol returns the display symbol of the position's security.
func (p Position) Symbol() string { return p.Security.DisplaySymbol() }

// Currency returns the currency of the position, which is the currency of its security.
func (p Position) Currency() string { return p.Security.Currency }

// AverageCost returns the mean of the per-lot unit costs.
//
// This is not a quantity-weighted average: a lot of 1 share weighs as much as a
// lot of 1000 shares. Lots without quantity are ignored; it returns nil when no
// lot is left.
func (p Position) AverageCost() *float64 {
	var sum float64
	n := 0
	for _, inv := range p.Investments {
		c, ok := inv.unitCost()
		if !ok {
			continue
		}
		sum += c
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// FindPosition returns the first position whose display symbol is symbol.
func FindPosition(positions []Position, symbol string) (Position, bool) {
	for _, p := range positions {
		if p.Symbol() == symbol {
			return p, true
		}
	}
	return Position{}, false
}
