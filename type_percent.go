package holdings

import "fmt"

// Percent is a value already multiplied by 100.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", float64(p))
	if res == "+0.0%" || res == "-0.0%" {
		return "-"
	}
	return res
}

// FormatOptionalPercent formats p with one decimal, "N/A" when it is unknown.
func FormatOptionalPercent(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return Percent(*p).String()
}
