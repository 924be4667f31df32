package holdings

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Snapshot is the state of the portfolio handed over by the data loader.
type Snapshot struct {
	Positions []Position `json:"positions"`
	Accounts  []Account  `json:"accounts"`
}

// SnapshotPaths are the JSONPath expressions locating the positions and the
// accounts arrays in a snapshot document. An empty path means the array is absent.
type SnapshotPaths struct {
	Positions string
	Accounts  string
}

// DefaultSnapshotPaths reads a document of the form {"positions": [...], "accounts": [...]}.
var DefaultSnapshotPaths = SnapshotPaths{Positions: "$.positions", Accounts: "$.accounts"}

// DecodeSnapshot reads a JSON document and extracts the snapshot arrays from it.
func DecodeSnapshot(r io.Reader, paths SnapshotPaths) (*Snapshot, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}

	s := &Snapshot{}
	if err := extract(doc, paths.Positions, &s.Positions); err != nil {
		return nil, fmt.Errorf("could not read positions: %w", err)
	}
	if err := extract(doc, paths.Accounts, &s.Accounts); err != nil {
		return nil, fmt.Errorf("could not read accounts: %w", err)
	}
	return s, nil
}

// extract evaluates path on doc and decodes the result into v.
func extract(doc any, path string, v any) error {
	if path == "" {
		return nil
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if val == nil {
		return nil
	}
	// jsonpath results are plain json values, the simplest way to type them is another round trip.
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("error encoding %q: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("error decoding %q: %w", path, err)
	}
	return nil
}

// Holdings is NewHoldingReport on the snapshot.
func (s *Snapshot) Holdings() HoldingReport { return NewHoldingReport(s.Positions, s.Accounts) }

// Composition is NewComposition on the snapshot.
func (s *Snapshot) Composition() Composition { return NewComposition(s.Accounts, s.Positions) }

// Movers is NewMoversReport on the snapshot.
func (s *Snapshot) Movers() MoversReport { return NewMoversReport(s.Positions) }

// Drilldowns is Drilldowns on the snapshot positions.
func (s *Snapshot) Drilldowns(colors ColorTable) []Drilldown { return Drilldowns(s.Positions, colors) }

// Position returns the position displayed as symbol.
func (s *Snapshot) Position(symbol string) (Position, bool) { return FindPosition(s.Positions, symbol) }
