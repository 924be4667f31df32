package chart

import (
	"fmt"

	"github.com/etnz/holdings"
)

// Assembler builds chart series out of the portfolio aggregates.
//
// PrivateMode hides amounts: it disables data labels and y-axis labels and
// changes nothing else.
type Assembler struct {
	PrivateMode bool
	// Drilldown links holding points to their transaction series.
	Drilldown bool
	Colors    holdings.ColorTable
	// Selection, if not nil, records the symbol of clicked holding points.
	Selection *Selection
}

// NewAssembler returns an Assembler using the built-in color table.
func NewAssembler(private bool) *Assembler {
	return &Assembler{PrivateMode: private, Colors: holdings.DefaultColors}
}

// Selection is the symbol currently drilled into.
type Selection struct {
	Symbol string
}

// Click selects the symbol name. It reports whether the selection changed.
func (s *Selection) Click(name string) bool {
	if name == "" || s.Symbol == name {
		return false
	}
	s.Symbol = name
	return true
}

// Position returns the selected position of snap, if any.
func (s *Selection) Position(snap *holdings.Snapshot) (holdings.Position, bool) {
	if s == nil || s.Symbol == "" {
		return holdings.Position{}, false
	}
	return snap.Position(s.Symbol)
}

func (a *Assembler) onClick() func(string) {
	if a.Selection == nil {
		return nil
	}
	return func(name string) { a.Selection.Click(name) }
}

func (a *Assembler) dataLabels(format string) *DataLabels {
	return &DataLabels{Enabled: !a.PrivateMode, Format: format}
}

// HoldingPoints returns one point per holding, in the report order.
func (a *Assembler) HoldingPoints(r holdings.HoldingReport) []Point {
	points := make([]Point, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		p := Point{
			Name: h.Symbol,
			Y:    h.MarketValue,
			Fields: []Field{
				{"displayValue", holdings.FormatCurrency(h.MarketValue, 1)},
				{"marketValue", holdings.FormatMoney(h.MarketValue)},
				{"percentage", h.Weight.InexactFloat64()},
				{"gain", h.Gain},
				{"profit", holdings.FormatMoney(h.Profit)},
				{"buyPrice", holdings.FormatOptionalMoney(h.BuyPrice)},
				{"shares", h.Shares},
				{"lastPrice", holdings.FormatMoney(h.LastPrice)},
				{"currency", h.Currency},
				{"accountsTable", AccountsTable(h.Accounts)},
			},
		}
		if a.Drilldown {
			p.Drilldown = h.Symbol
		}
		points = append(points, p)
	}
	return points
}

// HoldingsColumn returns the holdings as a column series ranked by value.
func (a *Assembler) HoldingsColumn(r holdings.HoldingReport) Series {
	return Series{
		Type:         Column,
		Name:         "Holdings",
		ColorByPoint: true,
		Data:         a.HoldingPoints(r),
		Tooltip:      &Tooltip{PointFormat: holdingsColumnTooltip},
		DataLabels:   a.dataLabels("{point.displayValue}"),
		OnClick:      a.onClick(),
	}
}

// HoldingsPie returns the holdings as a pie series.
func (a *Assembler) HoldingsPie(r holdings.HoldingReport) Series {
	return Series{
		Type:       Pie,
		Name:       "Holdings",
		Data:       a.HoldingPoints(r),
		Tooltip:    &Tooltip{PointFormat: holdingsPieTooltip},
		DataLabels: a.dataLabels("<b>{point.name}</b>: {point.percentage:.1f}%"),
		OnClick:    a.onClick(),
	}
}

// CompositionPie returns the currency buckets of c as a pie series.
func (a *Assembler) CompositionPie(c holdings.Composition) Series {
	points := make([]Point, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		points = append(points, Point{
			Name: b.Name(),
			Y:    b.Value,
			Fields: []Field{
				{"displayValue", holdings.FormatNumber(b.Value)},
				{"totalValue", c.TotalString()},
				{"percentage", b.Weight.InexactFloat64()},
				{"additionalValue", bucketRows(b)},
			},
		})
	}
	return Series{
		Type:       Pie,
		Name:       "USD vs CAD",
		Data:       points,
		Tooltip:    &Tooltip{PointFormat: compositionTooltip},
		DataLabels: a.dataLabels("<b>{point.name}</b>: {point.percentage:.1f}%"),
	}
}

// MoversColumn returns the gainers or the losers as a column series whose
// values are gain percents. Percents are not amounts: their data labels stay
// visible in private mode.
func (a *Assembler) MoversColumn(movers []holdings.Mover, gainers bool) Series {
	name, label := "Top Losers", "Loss"
	if gainers {
		name, label = "Top Gainers", "Gain"
	}
	points := make([]Point, 0, len(movers))
	for _, m := range movers {
		points = append(points, Point{
			Name:   m.Symbol,
			Y:      m.GainPercent,
			Fields: []Field{{"gain", holdings.FormatMoney(m.GainAmount)}},
		})
	}
	return Series{
		Type:         Column,
		Name:         name,
		ColorByPoint: true,
		Data:         points,
		Tooltip:      &Tooltip{PointFormat: "<b>{point.y:.1f}%</b><br />" + label + ": {point.gain}"},
		DataLabels:   &DataLabels{Enabled: true, Format: "{point.y:.1f}%"},
	}
}

// DrilldownSeries returns the transaction series of every drilldown, keyed by
// symbol.
func (a *Assembler) DrilldownSeries(dd []holdings.Drilldown) Drilldown {
	decimals := 1
	show := true
	series := make([]Series, 0, len(dd))
	for _, d := range dd {
		points := make([]Point, 0, len(d.Entries))
		for _, e := range d.Entries {
			points = append(points, Point{
				Name:  e.Date,
				Y:     e.Amount,
				Color: e.Color,
				Fields: []Field{
					{"displayValue", e.DisplayAmount},
					{"type", e.Type},
					{"price", optional(e.Price)},
					{"shares", optional(e.Shares)},
					{"label", e.Label},
				},
			})
		}
		series = append(series, Series{
			Type:         Column,
			ID:           d.Symbol,
			Name:         d.Symbol,
			Data:         points,
			Tooltip:      &Tooltip{UseHTML: true, PointFormat: drilldownTooltip, ValueDecimals: &decimals},
			DataLabels:   a.dataLabels("{point.label}"),
			ShowInLegend: &show,
			Legend: &Legend{
				Enabled:       true,
				Align:         "right",
				VerticalAlign: "top",
				Layout:        "vertical",
				X:             0,
				Y:             100,
			},
		})
	}
	return Drilldown{
		ActiveAxisLabelStyle: &Style{TextDecoration: "none"},
		ActiveDataLabelStyle: &Style{TextDecoration: "none"},
		Series:               series,
	}
}

// optional returns the value of v, or "N/A" when it is absent.
func optional(v *float64) any {
	if v == nil {
		return "N/A"
	}
	return *v
}

// Config describes the chart wrapping a list of series.
type Config struct {
	Title      string
	Subtitle   string
	YAxisTitle string
	Series     []Series
	Drilldown  Drilldown
}

// Options wraps c into the complete chart configuration.
func (a *Assembler) Options(c Config) Options {
	labels := !a.PrivateMode
	var subtitle Text
	if c.Subtitle != "" {
		subtitle = Text{Text: c.Subtitle, Style: &Style{Color: "#666666", FontSize: "12px"}}
	}
	var yTitle *Text
	if c.YAxisTitle != "" {
		yTitle = &Text{Text: c.YAxisTitle}
	}
	return Options{
		Series:    c.Series,
		Drilldown: c.Drilldown,
		Tooltip: Tooltip{
			Outside:         true,
			UseHTML:         true,
			BackgroundColor: "#FFF",
			Style:           &Style{Color: "#1F2A33"},
		},
		Title:    Text{Text: c.Title},
		Subtitle: subtitle,
		XAxis: Axis{
			Type: "category",
			Labels: Labels{
				Rotation: -45,
				Style:    &Style{FontSize: "13px", FontFamily: "Verdana, sans-serif"},
			},
		},
		YAxis: Axis{
			Labels: Labels{Enabled: &labels},
			Title:  yTitle,
		},
		PlotOptions: PlotOptions{Pie: PieOptions{
			AllowPointSelect: true,
			Cursor:           "pointer",
			DataLabels:       DataLabels{Enabled: labels, Format: "<b>{point.name}</b>: {point.percentage:.1f} %"},
		}},
	}
}

// Kind identifies one of the charts of a snapshot.
type Kind string

const (
	HoldingsChart    Kind = "holdings"
	PieChart         Kind = "pie"
	CompositionChart Kind = "currency"
	GainersChart     Kind = "gainers"
	LosersChart      Kind = "losers"
)

// Kinds lists every chart kind.
var Kinds = []Kind{HoldingsChart, PieChart, CompositionChart, GainersChart, LosersChart}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q, want one of %v", s, Kinds)
}

// Build assembles the chart kind for the snapshot s.
func (a *Assembler) Build(kind Kind, s *holdings.Snapshot) (Options, error) {
	var c Config
	switch kind {
	case HoldingsChart:
		c = Config{
			Title:      "Holdings",
			Subtitle:   "(click on a stock to view transactions)",
			YAxisTitle: "Market Value ($)",
			Series:     []Series{a.HoldingsColumn(s.Holdings())},
		}
	case PieChart:
		c = Config{
			Title:    "Holdings",
			Subtitle: "(click on a stock to view timeline and transactions)",
			Series:   []Series{a.HoldingsPie(s.Holdings())},
		}
	case CompositionChart:
		c = Config{
			Title:  "USD/CAD Composition",
			Series: []Series{a.CompositionPie(s.Composition())},
		}
	case GainersChart:
		c = Config{
			Title:      "Top Gainers",
			YAxisTitle: "Gain (%)",
			Series:     []Series{a.MoversColumn(s.Movers().Gainers, true)},
		}
	case LosersChart:
		c = Config{
			Title:      "Top Losers",
			YAxisTitle: "Loss (%)",
			Series:     []Series{a.MoversColumn(s.Movers().Losers, false)},
		}
	default:
		return Options{}, fmt.Errorf("unknown chart kind %q", kind)
	}
	if a.Drilldown && (kind == HoldingsChart || kind == PieChart) {
		c.Drilldown = a.DrilldownSeries(s.Drilldowns(a.Colors))
	}
	return a.Options(c), nil
}
