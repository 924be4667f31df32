package holdings

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Normalize returns the share of total of each value, in percent rounded to one
// decimal.
//
// Rounded percentages rarely add up to 100, so the last value absorbs the
// residual: the returned weights sum to exactly 100 whenever total is not zero.
// A zero total yields a zero weight for every value. Non finite numbers are
// treated as zero.
func Normalize(total float64, values []float64) []decimal.Decimal {
	return normalize(finite(total), values)
}

// Weights is Normalize over the sum of values.
func Weights(values []float64) []decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(finite(v))
	}
	return normalize(total, values)
}

func normalize(total decimal.Decimal, values []float64) []decimal.Decimal {
	weights := make([]decimal.Decimal, len(values))
	if total.IsZero() {
		for i := range weights {
			weights[i] = decimal.Zero
		}
		return weights
	}
	remaining := hundred
	for i, v := range values {
		w := finite(v).Mul(hundred).Div(total).Round(1)
		remaining = remaining.Sub(w)
		if i == len(values)-1 {
			w = w.Add(remaining)
		}
		weights[i] = w
	}
	return weights
}

// finite converts v to a decimal, NaN and infinities being zero.
func finite(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
