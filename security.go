package holdings

import "strings"

// Security is the reference data of a traded instrument.
type Security struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name,omitempty"`
	Type      string  `json:"type,omitempty"`
	Currency  string  `json:"currency"`
	LastPrice float64 `json:"last_price"`
}

// DisplaySymbol returns the symbol used to label the security on charts.
// Securities without a symbol (private funds, GICs) fall back to their name.
func (s Security) DisplaySymbol() string {
	if s.Symbol != "" {
		return s.Symbol
	}
	return s.Name
}

// normalizeCurrency is the key used to group amounts by currency.
func normalizeCurrency(cur string) string { return strings.ToLower(cur) }

// displayCurrency is the currency code as shown to the user.
func displayCurrency(cur string) string { return strings.ToUpper(cur) }
