package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/holdings"
)

// hidden replaces amounts in private mode.
const hidden = "•••"

func amount(private bool, s string) string {
	if private {
		return hidden
	}
	return s
}

// cell escapes s for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Holdings is the holdings report, ready to render.
// Amounts are hidden in private mode; weights and percents are not.
type Holdings struct {
	Private     bool
	TotalValue  string
	TotalProfit string
	Rows        []HoldingRow
}

// HoldingRow is one line of the holdings table.
type HoldingRow struct {
	Symbol      string
	Weight      string
	MarketValue string
	Gain        string
	Profit      string
	Shares      string
	BuyPrice    string
	LastPrice   string
	Currency    string
	Accounts    string
}

// NewHoldings prepares the holdings report r for rendering.
func NewHoldings(r holdings.HoldingReport, private bool) *Holdings {
	h := &Holdings{
		Private:     private,
		TotalValue:  amount(private, holdings.FormatMoney(r.TotalValue)),
		TotalProfit: amount(private, holdings.FormatMoney(r.TotalProfit)),
		Rows:        make([]HoldingRow, 0, len(r.Holdings)),
	}
	for _, x := range r.Holdings {
		h.Rows = append(h.Rows, HoldingRow{
			Symbol:      cell(x.Symbol),
			Weight:      holdings.Percent(x.Weight.InexactFloat64()).String(),
			MarketValue: amount(private, holdings.FormatMoney(x.MarketValue)),
			Gain:        holdings.FormatOptionalPercent(x.Gain),
			Profit:      amount(private, holdings.FormatMoney(x.Profit)),
			Shares:      amount(private, holdings.FormatQuantity(x.Shares)),
			BuyPrice:    holdings.FormatOptionalMoney(x.BuyPrice),
			LastPrice:   holdings.FormatMoney(x.LastPrice),
			Currency:    x.Currency,
			Accounts:    accountList(x.Accounts, private),
		})
	}
	return h
}

func accountList(accounts []holdings.AccountHolding, private bool) string {
	parts := make([]string, 0, len(accounts))
	for _, a := range accounts {
		s := a.Name + " " + a.Type
		if !private {
			s += " (" + holdings.FormatQuantity(a.Quantity) + ")"
		}
		parts = append(parts, cell(s))
	}
	return strings.Join(parts, ", ")
}

// Currency is the currency composition, ready to render.
type Currency struct {
	Total string
	Rows  []CurrencyRow
}

// CurrencyRow is one bucket of the composition.
type CurrencyRow struct {
	Name     string
	Value    string
	Weight   string
	Gain     string // stocks only
	Accounts string // cash only
}

// NewCurrency prepares the composition c for rendering.
func NewCurrency(c holdings.Composition, private bool) *Currency {
	res := &Currency{
		Total: amount(private, "$"+c.TotalString()),
		Rows:  make([]CurrencyRow, 0, len(c.Buckets)),
	}
	for _, b := range c.Buckets {
		row := CurrencyRow{
			Name:   b.Name(),
			Value:  amount(private, "$"+holdings.FormatNumber(b.Value)),
			Weight: holdings.Percent(b.Weight.InexactFloat64()).String(),
		}
		if b.Kind == holdings.StocksBucket {
			row.Gain = fmt.Sprintf("%s (%.2f%%)", amount(private, holdings.FormatMoney(b.Gain)), b.GainPercent())
		} else {
			var parts []string
			for _, a := range b.Accounts {
				parts = append(parts, cell(a.Name+" "+a.Type))
			}
			row.Accounts = strings.Join(parts, ", ")
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}

// Movers is a list of movers tables, ready to render.
type Movers struct {
	Tables []MoverTable
}

// MoverTable is one ranking of movers.
type MoverTable struct {
	Title string
	Rows  []MoverRow
}

// MoverRow is one mover.
type MoverRow struct {
	Symbol string
	Gain   string
	Amount string
}

// NewMoverTable prepares movers for rendering under title.
func NewMoverTable(title string, movers []holdings.Mover, private bool) MoverTable {
	t := MoverTable{Title: title, Rows: make([]MoverRow, 0, len(movers))}
	for _, m := range movers {
		t.Rows = append(t.Rows, MoverRow{
			Symbol: cell(m.Symbol),
			Gain:   holdings.Percent(m.GainPercent).SignedString(),
			Amount: amount(private, holdings.FormatMoney(m.GainAmount)),
		})
	}
	return t
}

// Drilldown is the transaction list of one position, ready to render.
type Drilldown struct {
	Symbol string
	Rows   []DrilldownRow
}

// DrilldownRow is one transaction.
type DrilldownRow struct {
	Date   string
	Type   string
	Label  string
	Amount string
	Price  string
	Shares string
}

// NewDrilldown prepares d for rendering.
func NewDrilldown(d holdings.Drilldown, private bool) *Drilldown {
	res := &Drilldown{Symbol: cell(d.Symbol), Rows: make([]DrilldownRow, 0, len(d.Entries))}
	for _, e := range d.Entries {
		row := DrilldownRow{
			Date:   e.Date,
			Type:   e.Type,
			Label:  amount(private, cell(e.Label)),
			Amount: amount(private, e.DisplayAmount),
			Price:  "N/A",
			Shares: "N/A",
		}
		if e.Price != nil {
			row.Price = holdings.FormatMoney(*e.Price)
		}
		if e.Shares != nil {
			row.Shares = amount(private, holdings.FormatQuantity(*e.Shares))
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}
