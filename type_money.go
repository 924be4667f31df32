package holdings

import (
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
)

// FormatMoney formats an amount for display, e.g. "$1,234.50".
//
// Amounts are shown with a dollar sign whatever their currency: the currency
// code is displayed separately when it matters.
func FormatMoney(v float64) string {
	cur := money.GetCurrency(money.USD)
	minor := finite(v).Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).IntPart()
	return money.New(minor, money.USD).Display()
}

// FormatOptionalMoney is FormatMoney, with "N/A" for a missing amount.
func FormatOptionalMoney(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return FormatMoney(*v)
}

// FormatNumber formats v with thousands separators and at most two decimals, e.g. "12,345.6".
func FormatNumber(v float64) string {
	return humanize.Commaf(round(v, 2))
}

// FormatCurrency formats v with a dollar sign and at most digits decimals, e.g. "$12,345.6".
func FormatCurrency(v float64, digits int) string {
	s := humanize.CommafWithDigits(round(v, digits), digits)
	if len(s) > 0 && s[0] == '-' {
		return "-$" + s[1:]
	}
	return "$" + s
}

// FormatQuantity formats a number of shares or a price the shortest way, e.g. "10" or "12.5".
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round rounds v half away from zero to the given number of decimals.
func round(v float64, digits int) float64 {
	return finite(v).Round(int32(digits)).InexactFloat64()
}

// percentValue converts a ratio into percent without losing the nil.
func percentValue(ratio *float64) *float64 {
	if ratio == nil {
		return nil
	}
	p := *ratio * 100
	return &p
}
