package holdings

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ColorTable maps transaction types to the color of their chart points.
//
// Keys are lower-cased transaction types. Types missing from the table use the
// Default color, so a table can never fail a lookup.
type ColorTable struct {
	Version string            `json:"version"`
	Default string            `json:"default"`
	Colors  map[string]string `json:"colors"`
}

// DefaultColors is the built-in color table.
var DefaultColors = ColorTable{
	Version: "v1",
	Default: "#95a5a6",
	Colors: map[string]string{
		string(Buy):          "#27ae60",
		string(Sell):         "#c0392b",
		string(Dividend):     "#8e44ad",
		string(Distribution): "#9b59b6",
		string(Interest):     "#16a085",
		string(Deposit):      "#2980b9",
		string(Withdrawal):   "#d35400",
		string(Fee):          "#e74c3c",
		string(Tax):          "#f39c12",
		string(Reinvest):     "#2ecc71",
		string(Split):        "#34495e",
		string(Transfer):     "#7f8c8d",
	},
}

// Color returns the color of the transaction type t, case-insensitively.
func (c ColorTable) Color(t TransactionType) string {
	if color, ok := c.Colors[t.key()]; ok {
		return color
	}
	return c.Default
}

// DecodeColorTable reads a color table in JSON format.
// The table must have a default color; keys are lower-cased.
func DecodeColorTable(r io.Reader) (ColorTable, error) {
	var c ColorTable
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return ColorTable{}, fmt.Errorf("could not decode color table: %w", err)
	}
	if c.Default == "" {
		return ColorTable{}, fmt.Errorf("color table %q has no default color", c.Version)
	}
	colors := make(map[string]string, len(c.Colors))
	for k, v := range c.Colors {
		colors[strings.ToLower(k)] = v
	}
	c.Colors = colors
	return c, nil
}
