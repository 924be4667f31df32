// Package chart shapes the portfolio aggregates into the series and options of
// a Highcharts compatible charting engine.
//
// The engine is an external collaborator: this package only produces data.
// Points carry both the plotted number and pre-formatted display fields that
// tooltip templates interpolate.
package chart

import "encoding/json"

// Type is the kind of a series.
type Type string

const (
	Column Type = "column"
	Pie    Type = "pie"
)

// Field is a display-only attribute of a point.
type Field struct {
	Key   string
	Value any
}

// Point is a single data point of a series.
//
// It is encoded as {"name":...,"y":...,"color":...,"drilldown":...} followed by
// its Fields in order. Empty color and drilldown are omitted.
type Point struct {
	Name      string
	Y         float64
	Color     string
	Drilldown string
	Fields    []Field
}

// Field returns the value of the display field key.
func (p Point) Field(key string) (any, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (p Point) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.Append("name", p.Name).
		Append("y", p.Y).
		Optional("color", p.Color).
		Optional("drilldown", p.Drilldown)
	for _, f := range p.Fields {
		w.Append(f.Key, f.Value)
	}
	return w.MarshalJSON()
}

var _ json.Marshaler = Point{}

// Series is a named list of points.
type Series struct {
	Type         Type        `json:"type"`
	ID           string      `json:"id,omitempty"`
	Name         string      `json:"name"`
	ColorByPoint bool        `json:"colorByPoint,omitempty"`
	Data         []Point     `json:"data"`
	Tooltip      *Tooltip    `json:"tooltip,omitempty"`
	DataLabels   *DataLabels `json:"dataLabels,omitempty"`
	Legend       *Legend     `json:"legend,omitempty"`
	ShowInLegend *bool       `json:"showInLegend,omitempty"`

	// OnClick is called with the name of the clicked point.
	OnClick func(name string) `json:"-"`
}

// Click forwards a click on the point name to the series hook, if any.
func (s Series) Click(name string) {
	if s.OnClick != nil {
		s.OnClick(name)
	}
}

// Tooltip configures the tooltip of a series or of the whole chart.
type Tooltip struct {
	Outside         bool   `json:"outside,omitempty"`
	UseHTML         bool   `json:"useHTML,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Style           *Style `json:"style,omitempty"`
	PointFormat     string `json:"pointFormat,omitempty"`
	ValueDecimals   *int   `json:"valueDecimals,omitempty"`
}

// DataLabels configures the labels drawn next to the points.
type DataLabels struct {
	Enabled bool   `json:"enabled"`
	Format  string `json:"format,omitempty"`
	Style   *Style `json:"style,omitempty"`
}

// Legend configures the legend of a series.
type Legend struct {
	Enabled       bool   `json:"enabled"`
	Align         string `json:"align,omitempty"`
	VerticalAlign string `json:"verticalAlign,omitempty"`
	Layout        string `json:"layout,omitempty"`
	X             int    `json:"x"`
	Y             int    `json:"y"`
}

// Style is a subset of CSS properties.
type Style struct {
	Color          string `json:"color,omitempty"`
	FontSize       string `json:"fontSize,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
	TextDecoration string `json:"textDecoration,omitempty"`
}

// Text is a title or subtitle.
type Text struct {
	Text  string `json:"text,omitempty"`
	Style *Style `json:"style,omitempty"`
}

// Labels configures axis labels.
type Labels struct {
	Enabled  *bool  `json:"enabled,omitempty"`
	Rotation int    `json:"rotation,omitempty"`
	Style    *Style `json:"style,omitempty"`
}

// Axis configures an axis.
type Axis struct {
	Type   string `json:"type,omitempty"`
	Labels Labels `json:"labels"`
	Title  *Text  `json:"title,omitempty"`
}

// PieOptions are the plot options shared by pie series.
type PieOptions struct {
	AllowPointSelect bool       `json:"allowPointSelect"`
	Cursor           string     `json:"cursor,omitempty"`
	DataLabels       DataLabels `json:"dataLabels"`
}

// PlotOptions are the options shared by series of the same type.
type PlotOptions struct {
	Pie PieOptions `json:"pie"`
}

// Drilldown is the configuration of the drill-down series, one per symbol.
// Its zero value encodes as an empty object, which disables drill-down.
type Drilldown struct {
	ActiveAxisLabelStyle *Style   `json:"activeAxisLabelStyle,omitempty"`
	ActiveDataLabelStyle *Style   `json:"activeDataLabelStyle,omitempty"`
	Series               []Series `json:"series,omitempty"`
}

// Exporting enables the engine export menu with its defaults.
type Exporting struct{}

// Options is the complete configuration of one chart.
type Options struct {
	Series      []Series    `json:"series"`
	Drilldown   Drilldown   `json:"drilldown"`
	Tooltip     Tooltip     `json:"tooltip"`
	Title       Text        `json:"title"`
	Subtitle    Text        `json:"subtitle"`
	XAxis       Axis        `json:"xAxis"`
	YAxis       Axis        `json:"yAxis"`
	PlotOptions PlotOptions `json:"plotOptions"`
	Exporting   Exporting   `json:"exporting"`
}
