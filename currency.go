package holdings

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// BucketKind classifies a CurrencyBucket.
type BucketKind string

const (
	CashBucket   BucketKind = "Cash"
	StocksBucket BucketKind = "Stocks"
)

// CurrencyBucket accumulates the amounts of one currency.
type CurrencyBucket struct {
	Kind     BucketKind
	Currency string          // lower-cased currency code
	Value    float64         // cash balance or market value
	Gain     float64         // always zero for cash
	Accounts []CashAccount   // accounts with cash in this currency, largest first; cash only
	Weight   decimal.Decimal // share of the composition total, set by NewComposition
}

// CashAccount is the cash balance of one account.
type CashAccount struct {
	Name string
	Type string
	Cash float64
}

// Name returns the display name of the bucket, e.g. "USD Stocks".
func (b CurrencyBucket) Name() string {
	return displayCurrency(b.Currency) + " " + string(b.Kind)
}

// GainPercent returns the gain relative to the bucket value, in percent.
// It is zero for an empty bucket.
func (b CurrencyBucket) GainPercent() float64 {
	if b.Value == 0 {
		return 0
	}
	return b.Gain / b.Value * 100
}

// GroupByCurrency folds accounts and positions into fresh buckets keyed by
// lower-cased currency code.
//
// Cash buckets accumulate the cash of accounts, stock buckets the market value
// and the gain of positions in the currency of their security. A missing
// currency is a currency like any other.
func GroupByCurrency(accounts []Account, positions []Position) (cash, stocks map[string]CurrencyBucket) {
	cash = make(map[string]CurrencyBucket)
	for _, a := range accounts {
		key := normalizeCurrency(a.Currency)
		b, ok := cash[key]
		if !ok {
			b = CurrencyBucket{Kind: CashBucket, Currency: key}
		}
		b.Value += a.Cash
		if a.Cash != 0 {
			b.Accounts = append(b.Accounts, CashAccount{Name: a.Name, Type: a.Type, Cash: a.Cash})
		}
		cash[key] = b
	}
	for key, b := range cash {
		slices.SortStableFunc(b.Accounts, func(x, y CashAccount) int { return cmp.Compare(y.Cash, x.Cash) })
		cash[key] = b
	}

	stocks = make(map[string]CurrencyBucket)
	for _, p := range positions {
		key := normalizeCurrency(p.Currency())
		b, ok := stocks[key]
		if !ok {
			b = CurrencyBucket{Kind: StocksBucket, Currency: key}
		}
		b.Value += p.MarketValue
		b.Gain += p.GainAmount
		stocks[key] = b
	}
	return cash, stocks
}

// Composition is the split of the portfolio by currency, stocks and cash apart.
type Composition struct {
	Buckets []CurrencyBucket // stock buckets then cash buckets, each by currency code
	Total   float64          // sum of all buckets, rounded to cents
}

// NewComposition groups accounts and positions by currency and weights every
// bucket against the total.
func NewComposition(accounts []Account, positions []Position) Composition {
	cash, stocks := GroupByCurrency(accounts, positions)

	buckets := make([]CurrencyBucket, 0, len(cash)+len(stocks))
	buckets = append(buckets, sortedBuckets(stocks)...)
	buckets = append(buckets, sortedBuckets(cash)...)

	values := make([]float64, len(buckets))
	total := decimal.Zero
	for i, b := range buckets {
		values[i] = b.Value
		total = total.Add(finite(b.Value))
	}
	weights := normalize(total, values)
	for i := range buckets {
		buckets[i].Weight = weights[i]
	}

	return Composition{
		Buckets: buckets,
		Total:   total.Round(2).InexactFloat64(),
	}
}

// TotalString returns the total with thousands separators, e.g. "12,345.67".
func (c Composition) TotalString() string { return FormatNumber(c.Total) }

func sortedBuckets(m map[string]CurrencyBucket) []CurrencyBucket {
	res := make([]CurrencyBucket, 0, len(m))
	for _, b := range m {
		res = append(res, b)
	}
	slices.SortFunc(res, func(x, y CurrencyBucket) int { return cmp.Compare(x.Currency, y.Currency) })
	return res
}
