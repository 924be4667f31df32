package holdings

// Account is a brokerage account holding cash and securities.
type Account struct {
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Currency  string            `json:"currency"`
	Cash      float64           `json:"cash"`
	Positions []AccountPosition `json:"positions"`
}

// AccountPosition is the quantity of a symbol held in one account.
type AccountPosition struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
}

// holding returns the first sub-position of the account for symbol.
func (a Account) holding(symbol string) (AccountPosition, bool) {
	for _, p := range a.Positions {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return AccountPosition{}, false
}
