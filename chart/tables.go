package chart

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/etnz/holdings"
)

// Tooltip tables are the only markup produced here: the engine inserts them
// verbatim in the tooltip templates below.

var accountsTable = template.Must(template.New("accounts").Parse(
	`<table><tr><th>Account</th><th align="right">Shares</th></tr>` +
		`{{range .}}<tr><td>{{.Name}} {{.Type}}</td><td align="right">{{.Quantity}}</td></tr>{{end}}</table>`))

var stockRows = template.Must(template.New("stocks").Parse(
	`<tr><td>Gain ($) </td><td align="right">{{.Gain}}</td></tr>` +
		`<tr><td>Gain (%)</td><td align="right">{{.GainPercent}}</td></tr>`))

var cashRows = template.Must(template.New("cash").Parse(
	`{{range .}}<tr><td>{{.Name}} {{.Type}}</td><td align="right">${{.Cash}}</td></tr>{{end}}`))

type accountRow struct {
	Name, Type, Quantity, Cash string
}

func execute(t *template.Template, data any) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", t.Name(), err)
	}
	return b.String()
}

// AccountsTable renders the split of a holding across accounts.
func AccountsTable(accounts []holdings.AccountHolding) string {
	rows := make([]accountRow, len(accounts))
	for i, a := range accounts {
		rows[i] = accountRow{Name: a.Name, Type: a.Type, Quantity: holdings.FormatQuantity(a.Quantity)}
	}
	return execute(accountsTable, rows)
}

// bucketRows renders the details of a currency bucket.
func bucketRows(b holdings.CurrencyBucket) string {
	if b.Kind == holdings.StocksBucket {
		return execute(stockRows, struct{ Gain, GainPercent string }{
			Gain:        holdings.FormatMoney(b.Gain),
			GainPercent: fmt.Sprintf("%.2f", b.GainPercent()),
		})
	}
	rows := make([]accountRow, len(b.Accounts))
	for i, a := range b.Accounts {
		rows[i] = accountRow{Name: a.Name, Type: a.Type, Cash: holdings.FormatNumber(a.Cash)}
	}
	return execute(cashRows, rows)
}

const holdingsColumnTooltip = `<b>{point.marketValue}</b><br /><br />
<table width="100%">
  <tr><td>Weightage</td><td align="right">{point.percentage:.1f}%</td></tr>
  <tr><td>Gain</td><td align="right">{point.gain:.1f}%</td></tr>
  <tr><td>Profit</td><td align="right">{point.profit}</td></tr>
  <tr><td>Shares</td><td align="right">{point.shares}</td></tr>
  <tr><td>Currency</td><td align="right">{point.currency}</td></tr>
  <tr><td>Buy Price</td><td align="right">{point.buyPrice}</td></tr>
  <tr><td>Last Price</td><td align="right">{point.lastPrice}</td></tr>
</table>
<br />{point.accountsTable}`

const holdingsPieTooltip = `<b>{point.percentage:.1f}%</b><br /><br />
<table width="100%">
  <tr><td>Value</td><td align="right">{point.marketValue}</td></tr>
  <tr><td>Gain</td><td align="right">{point.gain:.1f}%</td></tr>
  <tr><td>Profit</td><td align="right">{point.profit}</td></tr>
  <tr><td>Shares</td><td align="right">{point.shares}</td></tr>
  <tr><td>Currency</td><td align="right">{point.currency}</td></tr>
  <tr><td>Buy Price</td><td align="right">{point.buyPrice}</td></tr>
  <tr><td>Last Price</td><td align="right">{point.lastPrice}</td></tr>
</table>
<br />{point.accountsTable}`

const compositionTooltip = `<b>{point.percentage:.1f}%</b><br /><br />
<table><tr><td>Value</td><td align="right">${point.displayValue}</td></tr>
<tr><td>Total Value</td><td align="right">${point.totalValue}</td></tr>
<tr><td colspan="2">======================</td></tr>
{point.additionalValue}
</table>`

const drilldownTooltip = `<b>{point.label}</b><br />Type: {point.type}`
