package holdings

import (
	"errors"
	"io/fs"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/etnz/holdings/date"
)

func loadTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s, err := LoadSnapshot("testdata/snapshot.json", DefaultSnapshotPaths)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	return s
}

func TestLoadSnapshot(t *testing.T) {
	s := loadTestSnapshot(t)

	if len(s.Positions) != 3 || len(s.Accounts) != 2 {
		t.Fatalf("LoadSnapshot() = %d positions, %d accounts, want 3 and 2", len(s.Positions), len(s.Accounts))
	}
	xic := s.Positions[0]
	if xic.GainPercent == nil || *xic.GainPercent != 0.25 {
		t.Errorf("XIC.GainPercent = %v, want 0.25", xic.GainPercent)
	}
	if got := xic.Transactions[0].Date; got != date.New(2019, time.March, 4) {
		t.Errorf("XIC first transaction date = %v, want 2019-03-04", got)
	}
	if s.Positions[2].GainPercent != nil {
		t.Errorf("GIC.GainPercent = %v, want nil", *s.Positions[2].GainPercent)
	}
	if got := s.Positions[2].Symbol(); got != "GIC" {
		t.Errorf("GIC.Symbol() = %q, want GIC", got)
	}
}

func TestSnapshot_Reports(t *testing.T) {
	s := loadTestSnapshot(t)

	if got, want := s.Holdings().Symbols(), []string{"VTI", "XIC", "GIC"}; !slices.Equal(got, want) {
		t.Errorf("Holdings().Symbols() = %v, want %v", got, want)
	}

	c := s.Composition()
	if c.Total != 1200 {
		t.Errorf("Composition().Total = %v, want 1200", c.Total)
	}

	m := s.Movers()
	if len(m.Gainers) != 1 || m.Gainers[0].Symbol != "XIC" {
		t.Errorf("Movers().Gainers = %v, want [XIC]", m.Gainers)
	}
	if len(m.Losers) != 1 || m.Losers[0].Symbol != "VTI" {
		t.Errorf("Movers().Losers = %v, want [VTI]", m.Losers)
	}

	if _, ok := s.Position("VTI"); !ok {
		t.Errorf("Position(VTI) not found")
	}
	if _, ok := s.Position("NOPE"); ok {
		t.Errorf("Position(NOPE) found")
	}
	if dd := s.Drilldowns(DefaultColors); len(dd) != 3 || len(dd[0].Entries) != 2 {
		t.Errorf("Drilldowns() = %v, want 3 drilldowns with 2 entries for XIC", dd)
	}
}

func TestDecodeSnapshot_Paths(t *testing.T) {
	doc := `{"data": {"holdings": [{"security": {"symbol": "A"}, "market_value": 1}], "institutions": []}}`
	s, err := DecodeSnapshot(strings.NewReader(doc), SnapshotPaths{Positions: "$.data.holdings", Accounts: "$.data.institutions"})
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if len(s.Positions) != 1 || s.Positions[0].Symbol() != "A" {
		t.Errorf("DecodeSnapshot().Positions = %v, want [A]", s.Positions)
	}

	s, err = DecodeSnapshot(strings.NewReader(`{"positions": []}`), SnapshotPaths{Positions: "$.positions"})
	if err != nil {
		t.Fatalf("DecodeSnapshot() without accounts error = %v", err)
	}
	if len(s.Accounts) != 0 {
		t.Errorf("DecodeSnapshot().Accounts = %v, want none", s.Accounts)
	}
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	if _, err := DecodeSnapshot(strings.NewReader(`{`), DefaultSnapshotPaths); err == nil {
		t.Errorf("DecodeSnapshot(invalid json) expected an error")
	}
	if _, err := DecodeSnapshot(strings.NewReader(`{"positions": 3, "accounts": []}`), DefaultSnapshotPaths); err == nil {
		t.Errorf("DecodeSnapshot(positions is a number) expected an error")
	}
	if _, err := LoadSnapshot("testdata/missing.json", DefaultSnapshotPaths); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSnapshot(missing) error = %v, want a not exist error", err)
	}
}
