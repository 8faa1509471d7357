package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the side of a transaction.
// Values outside BUY/SELL are stored as given.
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "BUY"
	TransactionTypeSell TransactionType = "SELL"
)

// DateLayout is the calendar date format used for transaction dates
const DateLayout = "2006-01-02"

// Transaction represents a buy or sell of an instrument.
// InstrumentID is not checked against the instrument store.
type Transaction struct {
	ID           int64
	InstrumentID int64
	Type         TransactionType
	Quantity     decimal.Decimal
	Price        decimal.Decimal // Price per unit
	Date         time.Time       // Calendar date, midnight UTC
}

// Value returns price × quantity
func (t Transaction) Value() decimal.Decimal {
	return t.Price.Mul(t.Quantity)
}

// NewDate returns the calendar date as midnight UTC
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return d, nil
}

// TransactionFilter holds the optional transaction predicates.
// A nil field imposes no constraint. From and To are inclusive.
type TransactionFilter struct {
	InstrumentID *int64
	Type         *string
	From         *time.Time
	To           *time.Time
}

// Validate rejects filters that cannot match by construction
func (f TransactionFilter) Validate() error {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return fmt.Errorf("%w: date range start %s is after end %s",
			ErrInvalidArgument, f.From.Format(DateLayout), f.To.Format(DateLayout))
	}
	return nil
}

// TransactionQuery combines a filter with optional sorting and limiting.
// Sort must be one of date, instrumentId, type, quantity or price.
type TransactionQuery struct {
	Filter TransactionFilter
	Sort   string
	Limit  *int
}

// TransactionStats summarizes the transaction set
type TransactionStats struct {
	TotalTransactions      int
	CountByType            map[TransactionType]int
	TotalValueByInstrument map[int64]decimal.Decimal // Sum of price × quantity, regardless of type
}
