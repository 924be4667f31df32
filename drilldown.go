package holdings

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Drilldown is the transaction history of one position, as shown when the
// position is selected on a chart.
type Drilldown struct {
	Symbol  string
	Entries []DrilldownEntry // in the order of the position's transactions
}

// DrilldownEntry is one transaction, labeled for display.
type DrilldownEntry struct {
	Type          string // title-cased transaction type, e.g. "Dividend"
	Date          string // e.g. "Mar 4, 2019"
	Amount        float64
	DisplayAmount string
	Color         string
	Label         string   // "shares@price" for trades, "Type@$amount" otherwise
	Price         *float64 // trades only
	Shares        *float64 // trades only
	Transaction   Transaction
}

// NewDrilldown labels the transactions of p, keeping their order.
func NewDrilldown(p Position, colors ColorTable) Drilldown {
	d := Drilldown{
		Symbol:  p.Symbol(),
		Entries: make([]DrilldownEntry, 0, len(p.Transactions)),
	}
	for _, tx := range p.Transactions {
		d.Entries = append(d.Entries, newDrilldownEntry(tx, colors))
	}
	return d
}

// Drilldowns returns the drilldown of every position, in the positions order.
func Drilldowns(positions []Position, colors ColorTable) []Drilldown {
	res := make([]Drilldown, 0, len(positions))
	for _, p := range positions {
		res = append(res, NewDrilldown(p, colors))
	}
	return res
}

func newDrilldownEntry(tx Transaction, colors ColorTable) DrilldownEntry {
	typ := TitleType(tx.Type)
	e := DrilldownEntry{
		Type:          typ,
		Date:          tx.Date.Label(),
		Amount:        tx.Amount,
		DisplayAmount: FormatMoney(tx.Amount),
		Color:         colors.Color(tx.Type),
		Transaction:   tx,
	}
	if tx.Type.IsTrade() {
		price, shares := tx.Price, tx.Shares
		e.Price, e.Shares = &price, &shares
		e.Label = FormatQuantity(shares) + "@" + FormatQuantity(price)
	} else {
		e.Label = typ + "@" + FormatMoney(tx.Amount)
	}
	return e
}

// TitleType turns a transaction type into words, e.g. "reinvestDividend" and
// "reinvest_dividend" both become "Reinvest Dividend".
func TitleType(t TransactionType) string {
	return cases.Title(language.English).String(strings.Join(words(string(t)), " "))
}

// words splits s on separators and on lower to upper case transitions.
func words(s string) []string {
	var res []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			res = append(res, string(cur))
			cur = cur[:0]
		}
	}
	prevLower := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			flush()
		}
		cur = append(cur, r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	flush()
	return res
}
