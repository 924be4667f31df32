package holdings

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/etnz/holdings/date"
)

func TestNewDrilldown(t *testing.T) {
	p := Position{
		Security: Security{Symbol: "XIC"},
		Transactions: []Transaction{
			{Type: "buy", Date: date.New(2019, time.March, 4), Shares: 10, Price: 5, Amount: -50},
			{Type: "dividend", Date: date.New(2019, time.January, 2), Amount: 2},
		},
	}
	d := NewDrilldown(p, DefaultColors)

	if d.Symbol != "XIC" {
		t.Errorf("Symbol = %q, want XIC", d.Symbol)
	}
	labels := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		labels[i] = e.Label
	}
	if want := []string{"10@5", "Dividend@$2.00"}; !slices.Equal(labels, want) {
		t.Errorf("labels = %q, want %q", labels, want)
	}

	buy, div := d.Entries[0], d.Entries[1]
	if buy.Type != "Buy" || buy.Date != "Mar 4, 2019" || buy.Amount != -50 {
		t.Errorf("buy entry = %+v", buy)
	}
	if buy.Price == nil || *buy.Price != 5 || buy.Shares == nil || *buy.Shares != 10 {
		t.Errorf("buy price/shares = %v/%v, want 5/10", buy.Price, buy.Shares)
	}
	if buy.Color != DefaultColors.Colors["buy"] {
		t.Errorf("buy color = %q, want %q", buy.Color, DefaultColors.Colors["buy"])
	}
	if div.Price != nil || div.Shares != nil {
		t.Errorf("dividend price/shares = %v/%v, want none", div.Price, div.Shares)
	}
	if div.Date != "Jan 2, 2019" {
		t.Errorf("dividend date = %q, want %q", div.Date, "Jan 2, 2019")
	}
	if div.DisplayAmount != "$2.00" {
		t.Errorf("dividend DisplayAmount = %q, want $2.00", div.DisplayAmount)
	}
}

func TestNewDrilldown_TradeIsCaseInsensitive(t *testing.T) {
	p := Position{Transactions: []Transaction{{Type: "SELL", Shares: 2.5, Price: 12.25, Amount: 30.63}}}
	e := NewDrilldown(p, DefaultColors).Entries[0]
	if e.Label != "2.5@12.25" {
		t.Errorf("Label = %q, want %q", e.Label, "2.5@12.25")
	}
	if e.Type != "Sell" {
		t.Errorf("Type = %q, want Sell", e.Type)
	}
	if e.Color != DefaultColors.Colors["sell"] {
		t.Errorf("Color = %q, want the sell color", e.Color)
	}
}

func TestNewDrilldown_UnknownType(t *testing.T) {
	p := Position{Transactions: []Transaction{{Type: "return_of_capital", Amount: 12}}}
	e := NewDrilldown(p, DefaultColors).Entries[0]
	if e.Color != DefaultColors.Default {
		t.Errorf("Color = %q, want default %q", e.Color, DefaultColors.Default)
	}
	if e.Label != "Return Of Capital@$12.00" {
		t.Errorf("Label = %q, want %q", e.Label, "Return Of Capital@$12.00")
	}

	var none ColorTable
	if got := NewDrilldown(p, none).Entries[0].Color; got != "" {
		t.Errorf("Color with an empty table = %q, want empty", got)
	}
}

func TestDrilldowns_KeepsOrder(t *testing.T) {
	positions := []Position{
		{Security: Security{Symbol: "B"}},
		{Security: Security{Symbol: "A"}, Transactions: []Transaction{{Type: "fee", Amount: -1}, {Type: "deposit", Amount: 3}, {Type: "fee", Amount: -2}}},
	}
	dd := Drilldowns(positions, DefaultColors)
	if len(dd) != 2 || dd[0].Symbol != "B" || dd[1].Symbol != "A" {
		t.Fatalf("Drilldowns() = %v, want B then A", dd)
	}
	if len(dd[0].Entries) != 0 {
		t.Errorf("B has %d entries, want 0", len(dd[0].Entries))
	}
	var amounts []float64
	for _, e := range dd[1].Entries {
		amounts = append(amounts, e.Amount)
	}
	if want := []float64{-1, 3, -2}; !slices.Equal(amounts, want) {
		t.Errorf("amounts = %v, want %v", amounts, want)
	}
}

func TestTitleType(t *testing.T) {
	tests := []struct {
		in   TransactionType
		want string
	}{
		{"dividend", "Dividend"},
		{"BUY", "Buy"},
		{"reinvestDividend", "Reinvest Dividend"},
		{"fee_rebate", "Fee Rebate"},
		{"  transfer-in ", "Transfer In"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleType(tt.in); got != tt.want {
			t.Errorf("TitleType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeColorTable(t *testing.T) {
	c, err := DecodeColorTable(strings.NewReader(`{"version":"v2","default":"#000","colors":{"Buy":"#0f0"}}`))
	if err != nil {
		t.Fatalf("DecodeColorTable() error = %v", err)
	}
	if got := c.Color("buy"); got != "#0f0" {
		t.Errorf("Color(buy) = %q, want #0f0", got)
	}
	if got := c.Color("sell"); got != "#000" {
		t.Errorf("Color(sell) = %q, want #000", got)
	}

	if _, err := DecodeColorTable(strings.NewReader(`{"version":"v3","colors":{}}`)); err == nil {
		t.Errorf("DecodeColorTable() without default: expected an error")
	}
}
