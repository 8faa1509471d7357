package domain

// Common instrument types. The field itself is unconstrained.
const (
	InstrumentTypeStock = "STOCK"
	InstrumentTypeETF   = "ETF"
)

// Instrument represents a tradable financial instrument
type Instrument struct {
	ID       int64
	Ticker   string
	Currency string
	Market   string
	Type     string
}

// InstrumentFilter holds the optional instrument predicates.
// A nil field imposes no constraint.
//   - Type, Currency, Market: case-insensitive equality
//   - Ticker: case-insensitive substring match
type InstrumentFilter struct {
	Type     *string
	Currency *string
	Ticker   *string
	Market   *string
}

// InstrumentQuery combines a filter with optional sorting and limiting.
// Sort must be one of ticker, currency, market or type; empty means insertion order.
type InstrumentQuery struct {
	Filter InstrumentFilter
	Sort   string
	Limit  *int
}

// InstrumentStats summarizes the instrument set
type InstrumentStats struct {
	TotalInstruments int
	CountByType      map[string]int
	CountByMarket    map[string]int
}
