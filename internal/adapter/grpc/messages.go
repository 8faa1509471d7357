package grpc

import "github.com/shopspring/decimal"

// Empty is used by calls without parameters or results
type Empty struct{}

// Instrument is the wire form of domain.Instrument
type Instrument struct {
	ID       int64  `json:"id"`
	Ticker   string `json:"ticker"`
	Currency string `json:"currency"`
	Market   string `json:"market"`
	Type     string `json:"type"`
}

// ListInstrumentsRequest carries optional filters, sort field and limit
type ListInstrumentsRequest struct {
	Type     *string `json:"type,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Ticker   *string `json:"ticker,omitempty"`
	Market   *string `json:"market,omitempty"`
	Sort     string  `json:"sort,omitempty"`
	Limit    *int    `json:"limit,omitempty"`
}

type ListInstrumentsResponse struct {
	Instruments []Instrument `json:"instruments"`
}

type GetInstrumentRequest struct {
	ID int64 `json:"id"`
}

type CreateInstrumentRequest struct {
	Ticker   string `json:"ticker"`
	Currency string `json:"currency"`
	Market   string `json:"market"`
	Type     string `json:"type"`
}

// UpdateInstrumentRequest changes only the fields that are present
type UpdateInstrumentRequest struct {
	ID       int64   `json:"id"`
	Ticker   *string `json:"ticker,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Market   *string `json:"market,omitempty"`
	Type     *string `json:"type,omitempty"`
}

type DeleteInstrumentRequest struct {
	ID int64 `json:"id"`
}

type InstrumentResponse struct {
	Instrument Instrument `json:"instrument"`
}

type InstrumentStatsResponse struct {
	TotalInstruments int            `json:"totalInstruments"`
	CountByType      map[string]int `json:"countByType"`
	CountByMarket    map[string]int `json:"countByMarket"`
}

// Transaction is the wire form of domain.Transaction. Date is YYYY-MM-DD.
type Transaction struct {
	ID           int64           `json:"id"`
	InstrumentID int64           `json:"instrumentId"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Date         string          `json:"date"`
}

// ListTransactionsRequest carries optional filters, sort field and limit.
// From and To are inclusive YYYY-MM-DD dates.
type ListTransactionsRequest struct {
	InstrumentID *int64  `json:"instrumentId,omitempty"`
	Type         *string `json:"type,omitempty"`
	From         string  `json:"from,omitempty"`
	To           string  `json:"to,omitempty"`
	Sort         string  `json:"sort,omitempty"`
	Limit        *int    `json:"limit,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type GetTransactionRequest struct {
	ID int64 `json:"id"`
}

// CreateTransactionRequest carries decimals as strings so malformed values
// are reported as invalid arguments. An empty Date means today (UTC).
type CreateTransactionRequest struct {
	InstrumentID int64  `json:"instrumentId"`
	Type         string `json:"type"`
	Quantity     string `json:"quantity"`
	Price        string `json:"price"`
	Date         string `json:"date,omitempty"`
}

type TransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type TransactionStatsResponse struct {
	TotalTransactions      int                       `json:"totalTransactions"`
	CountByType            map[string]int            `json:"countByType"`
	TotalValueByInstrument map[int64]decimal.Decimal `json:"totalValueByInstrument"`
}

type Comment struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type Note struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Author   string    `json:"author"`
	Comments []Comment `json:"comments"`
}

// ListNotesRequest filters by author and title search. Page is zero-based;
// a zero Size means the default page size.
type ListNotesRequest struct {
	Author *string `json:"author,omitempty"`
	Search *string `json:"search,omitempty"`
	Page   int     `json:"page,omitempty"`
	Size   int     `json:"size,omitempty"`
}

type ListNotesResponse struct {
	Notes []Note `json:"notes"`
}

type GetNoteRequest struct {
	ID int64 `json:"id"`
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type UpdateNoteRequest struct {
	ID      int64   `json:"id"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type DeleteNoteRequest struct {
	ID int64 `json:"id"`
}

type NoteResponse struct {
	Note Note `json:"note"`
}

type GetCommentRequest struct {
	NoteID    int64 `json:"noteId"`
	CommentID int64 `json:"commentId"`
}

type AddCommentRequest struct {
	NoteID int64  `json:"noteId"`
	Text   string `json:"text"`
}

type CommentResponse struct {
	Comment Comment `json:"comment"`
}

// InfoResponse reports build and runtime information
type InfoResponse struct {
	Version   string `json:"version"`
	Status    string `json:"status"`
	GoVersion string `json:"goVersion"`
}
