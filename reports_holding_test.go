package holdings

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func holdingPositions() []Position {
	return []Position{
		{
			Security:    Security{Symbol: "XIC", Currency: "cad", LastPrice: 30},
			MarketValue: 300,
			Quantity:    10,
			GainAmount:  50,
			GainPercent: ptr(0.2),
			Investments: []Investment{{BookValue: 100, Quantity: 5}, {BookValue: 150, Quantity: 5}},
		},
		{
			Security:    Security{Symbol: "VTI", Currency: "usd", LastPrice: 200},
			MarketValue: 600,
			Quantity:    3,
			GainAmount:  -20,
			GainPercent: ptr(-0.25),
			Investments: []Investment{{BookValue: 100, Quantity: 1}, {BookValue: 520, Quantity: 2}},
		},
		{
			Security:    Security{Name: "GIC 2%", Currency: "CAD", LastPrice: 1},
			MarketValue: 100,
			Quantity:    100,
		},
	}
}

func holdingAccounts() []Account {
	return []Account{
		{Name: "Alice", Type: "TFSA", Positions: []AccountPosition{{Symbol: "VTI", Quantity: 1}, {Symbol: "XIC", Quantity: 4}}},
		{Name: "Bob", Type: "RRSP", Positions: []AccountPosition{{Symbol: "VTI", Quantity: 2}}},
		{Name: "Carol", Type: "Margin"},
	}
}

func TestNewHoldingReport(t *testing.T) {
	r := NewHoldingReport(holdingPositions(), holdingAccounts())

	if got, want := r.Symbols(), []string{"VTI", "XIC", "GIC 2%"}; !slices.Equal(got, want) {
		t.Fatalf("Symbols() = %v, want %v", got, want)
	}
	for i := 1; i < len(r.Holdings); i++ {
		if r.Holdings[i-1].MarketValue < r.Holdings[i].MarketValue {
			t.Errorf("Holdings[%d].MarketValue = %v < Holdings[%d].MarketValue = %v", i-1, r.Holdings[i-1].MarketValue, i, r.Holdings[i].MarketValue)
		}
	}

	wantWeights := []string{"60", "30", "10"}
	for i, w := range wantWeights {
		if !r.Holdings[i].Weight.Equal(decimal.RequireFromString(w)) {
			t.Errorf("Holdings[%d].Weight = %v, want %v", i, r.Holdings[i].Weight, w)
		}
	}

	if r.TotalValue != 1000 || r.TotalProfit != 30 {
		t.Errorf("totals = (%v, %v), want (1000, 30)", r.TotalValue, r.TotalProfit)
	}

	vti := r.Holdings[0]
	if vti.Currency != "USD" {
		t.Errorf("VTI.Currency = %q, want USD", vti.Currency)
	}
	if vti.Gain == nil || *vti.Gain != -25 {
		t.Errorf("VTI.Gain = %v, want -25", vti.Gain)
	}
	// (100/1 + 520/2) / 2, not 620/3
	if vti.BuyPrice == nil || *vti.BuyPrice != 180 {
		t.Errorf("VTI.BuyPrice = %v, want 180", vti.BuyPrice)
	}
	if vti.Shares != 3 || vti.LastPrice != 200 || vti.Profit != -20 {
		t.Errorf("VTI = %+v", vti)
	}
	wantAccounts := []AccountHolding{{Name: "Bob", Type: "RRSP", Quantity: 2}, {Name: "Alice", Type: "TFSA", Quantity: 1}}
	if !slices.Equal(vti.Accounts, wantAccounts) {
		t.Errorf("VTI.Accounts = %v, want %v", vti.Accounts, wantAccounts)
	}

	gic := r.Holdings[2]
	if gic.Gain != nil {
		t.Errorf("GIC.Gain = %v, want nil", *gic.Gain)
	}
	if gic.BuyPrice != nil {
		t.Errorf("GIC.BuyPrice = %v, want nil", *gic.BuyPrice)
	}
	if gic.Accounts != nil {
		t.Errorf("GIC.Accounts = %v, want none", gic.Accounts)
	}
	if gic.Currency != "CAD" {
		t.Errorf("GIC.Currency = %q, want CAD", gic.Currency)
	}
}

func TestNewHoldingReport_DoesNotMutate(t *testing.T) {
	positions := holdingPositions()
	before := positions[0].Security.Symbol
	NewHoldingReport(positions, nil)
	if positions[0].Security.Symbol != before {
		t.Errorf("NewHoldingReport() reordered its input: first is %q, want %q", positions[0].Security.Symbol, before)
	}
}

func TestNewHoldingReport_ZeroTotal(t *testing.T) {
	positions := []Position{
		{Security: Security{Symbol: "A"}},
		{Security: Security{Symbol: "B"}},
	}
	r := NewHoldingReport(positions, nil)
	for _, h := range r.Holdings {
		if !h.Weight.IsZero() {
			t.Errorf("%s.Weight = %v, want 0", h.Symbol, h.Weight)
		}
	}
}

func TestNewHoldingReport_Empty(t *testing.T) {
	r := NewHoldingReport(nil, nil)
	if len(r.Holdings) != 0 || r.TotalValue != 0 {
		t.Errorf("NewHoldingReport(nil) = %+v, want empty", r)
	}
}

func TestPosition_AverageCost(t *testing.T) {
	tests := []struct {
		name        string
		investments []Investment
		want        *float64
	}{
		{"no lots", nil, nil},
		{"only empty lots", []Investment{{BookValue: 10}}, nil},
		{"single lot", []Investment{{BookValue: 100, Quantity: 4}}, ptr(25)},
		{"per lot mean", []Investment{{BookValue: 10, Quantity: 1}, {BookValue: 1000, Quantity: 50}}, ptr(15)},
		{"empty lot skipped", []Investment{{BookValue: 10, Quantity: 1}, {BookValue: 5}}, ptr(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Position{Investments: tt.investments}.AverageCost()
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("AverageCost() = %v, want %v", got, tt.want)
			case *got != *tt.want:
				t.Errorf("AverageCost() = %v, want %v", *got, *tt.want)
			}
		})
	}
}
