package holdings

import (
	"strings"

	"github.com/etnz/holdings/date"
)

// TransactionType is a typed string for identifying transactions.
// The list below is not exhaustive: the data loader may deliver any type.
type TransactionType string

// Transaction types known to the default color table.
const (
	Buy          TransactionType = "buy"
	Sell         TransactionType = "sell"
	Dividend     TransactionType = "dividend"
	Distribution TransactionType = "distribution"
	Interest     TransactionType = "interest"
	Deposit      TransactionType = "deposit"
	Withdrawal   TransactionType = "withdrawal"
	Fee          TransactionType = "fee"
	Tax          TransactionType = "tax"
	Reinvest     TransactionType = "reinvest"
	Split        TransactionType = "split"
	Transfer     TransactionType = "transfer"
)

// key is the case-insensitive lookup key of the type.
func (t TransactionType) key() string { return strings.ToLower(string(t)) }

// IsTrade reports whether the transaction type is a buy or a sell.
func (t TransactionType) IsTrade() bool {
	k := TransactionType(t.key())
	return k == Buy || k == Sell
}

// Transaction is an immutable historical record of a position.
// Its currency is the currency of the owning Position.
type Transaction struct {
	Type   TransactionType `json:"type"`
	Date   date.Date       `json:"date"`
	Amount float64         `json:"amount"`
	Price  float64         `json:"price"`
	Shares float64         `json:"shares"`
}
