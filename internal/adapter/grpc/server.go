package grpc

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sp94dev/wallet-manager/internal/domain"
	"github.com/sp94dev/wallet-manager/internal/usecase/instrument"
	"github.com/sp94dev/wallet-manager/internal/usecase/note"
	"github.com/sp94dev/wallet-manager/internal/usecase/transaction"
)

// BuildInfo is reported by the Info call
type BuildInfo struct {
	Version string
	Status  string
}

// Server implements the WalletService gRPC server
type Server struct {
	InstrumentService  *instrument.InstrumentService
	TransactionService *transaction.TransactionService
	NoteService        *note.NoteService
	BuildInfo          BuildInfo
}

// NewServer creates a new gRPC server instance
func NewServer(
	instrumentService *instrument.InstrumentService,
	transactionService *transaction.TransactionService,
	noteService *note.NoteService,
	buildInfo BuildInfo,
) *Server {
	return &Server{
		InstrumentService:  instrumentService,
		TransactionService: transactionService,
		NoteService:        noteService,
		BuildInfo:          buildInfo,
	}
}

// ListInstruments handles the ListInstruments RPC
func (s *Server) ListInstruments(ctx context.Context, req *ListInstrumentsRequest) (*ListInstrumentsResponse, error) {
	instruments, err := s.InstrumentService.List(ctx, domain.InstrumentQuery{
		Filter: domain.InstrumentFilter{
			Type:     req.Type,
			Currency: req.Currency,
			Ticker:   req.Ticker,
			Market:   req.Market,
		},
		Sort:  req.Sort,
		Limit: req.Limit,
	})
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]Instrument, 0, len(instruments))
	for _, i := range instruments {
		out = append(out, instrumentToWire(i))
	}
	return &ListInstrumentsResponse{Instruments: out}, nil
}

// GetInstrument handles the GetInstrument RPC
func (s *Server) GetInstrument(ctx context.Context, req *GetInstrumentRequest) (*InstrumentResponse, error) {
	i, err := s.InstrumentService.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &InstrumentResponse{Instrument: instrumentToWire(*i)}, nil
}

// CreateInstrument handles the CreateInstrument RPC
func (s *Server) CreateInstrument(ctx context.Context, req *CreateInstrumentRequest) (*InstrumentResponse, error) {
	i, err := s.InstrumentService.Create(ctx, domain.Instrument{
		Ticker:   req.Ticker,
		Currency: req.Currency,
		Market:   req.Market,
		Type:     req.Type,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &InstrumentResponse{Instrument: instrumentToWire(*i)}, nil
}

// UpdateInstrument handles the UpdateInstrument RPC
func (s *Server) UpdateInstrument(ctx context.Context, req *UpdateInstrumentRequest) (*InstrumentResponse, error) {
	i, err := s.InstrumentService.Update(ctx, req.ID, instrument.UpdateInstrumentInput{
		Ticker:   req.Ticker,
		Currency: req.Currency,
		Market:   req.Market,
		Type:     req.Type,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &InstrumentResponse{Instrument: instrumentToWire(*i)}, nil
}

// DeleteInstrument handles the DeleteInstrument RPC
func (s *Server) DeleteInstrument(ctx context.Context, req *DeleteInstrumentRequest) (*Empty, error) {
	if err := s.InstrumentService.Delete(ctx, req.ID); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}

// GetInstrumentStats handles the GetInstrumentStats RPC
func (s *Server) GetInstrumentStats(ctx context.Context, _ *Empty) (*InstrumentStatsResponse, error) {
	stats, err := s.InstrumentService.Stats(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &InstrumentStatsResponse{
		TotalInstruments: stats.TotalInstruments,
		CountByType:      stats.CountByType,
		CountByMarket:    stats.CountByMarket,
	}, nil
}

// ListTransactions handles the ListTransactions RPC
func (s *Server) ListTransactions(ctx context.Context, req *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	from, err := parseOptionalDate("from", req.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate("to", req.To)
	if err != nil {
		return nil, err
	}

	transactions, err := s.TransactionService.List(ctx, domain.TransactionQuery{
		Filter: domain.TransactionFilter{
			InstrumentID: req.InstrumentID,
			Type:         req.Type,
			From:         from,
			To:           to,
		},
		Sort:  req.Sort,
		Limit: req.Limit,
	})
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, transactionToWire(tx))
	}
	return &ListTransactionsResponse{Transactions: out}, nil
}

// GetTransaction handles the GetTransaction RPC
func (s *Server) GetTransaction(ctx context.Context, req *GetTransactionRequest) (*TransactionResponse, error) {
	tx, err := s.TransactionService.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &TransactionResponse{Transaction: transactionToWire(*tx)}, nil
}

// CreateTransaction handles the CreateTransaction RPC
func (s *Server) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*TransactionResponse, error) {
	// Parse quantity and price from string to decimal
	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid quantity format: %v", err)
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid price format: %v", err)
	}

	// Missing date means the transaction happened today
	date := domain.NewDate(time.Now().UTC().Date())
	if req.Date != "" {
		date, err = domain.ParseDate(req.Date)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid date: %v", err)
		}
	}

	tx, err := s.TransactionService.Create(ctx, domain.Transaction{
		InstrumentID: req.InstrumentID,
		Type:         domain.TransactionType(req.Type),
		Quantity:     quantity,
		Price:        price,
		Date:         date,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &TransactionResponse{Transaction: transactionToWire(*tx)}, nil
}

// GetTransactionStats handles the GetTransactionStats RPC
func (s *Server) GetTransactionStats(ctx context.Context, _ *Empty) (*TransactionStatsResponse, error) {
	stats, err := s.TransactionService.Stats(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	countByType := make(map[string]int, len(stats.CountByType))
	for t, n := range stats.CountByType {
		countByType[string(t)] = n
	}

	return &TransactionStatsResponse{
		TotalTransactions:      stats.TotalTransactions,
		CountByType:            countByType,
		TotalValueByInstrument: stats.TotalValueByInstrument,
	}, nil
}

// ListNotes handles the ListNotes RPC
func (s *Server) ListNotes(ctx context.Context, req *ListNotesRequest) (*ListNotesResponse, error) {
	size := req.Size
	if size == 0 {
		size = domain.DefaultNotePageSize
	}

	notes, err := s.NoteService.List(ctx, domain.NoteQuery{
		Filter: domain.NoteFilter{Author: req.Author, Search: req.Search},
		Page:   req.Page,
		Size:   size,
	})
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteToWire(n))
	}
	return &ListNotesResponse{Notes: out}, nil
}

// GetNote handles the GetNote RPC
func (s *Server) GetNote(ctx context.Context, req *GetNoteRequest) (*NoteResponse, error) {
	n, err := s.NoteService.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &NoteResponse{Note: noteToWire(*n)}, nil
}

// CreateNote handles the CreateNote RPC
func (s *Server) CreateNote(ctx context.Context, req *CreateNoteRequest) (*NoteResponse, error) {
	n, err := s.NoteService.Create(ctx, note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &NoteResponse{Note: noteToWire(*n)}, nil
}

// UpdateNote handles the UpdateNote RPC
func (s *Server) UpdateNote(ctx context.Context, req *UpdateNoteRequest) (*NoteResponse, error) {
	n, err := s.NoteService.Update(ctx, req.ID, note.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &NoteResponse{Note: noteToWire(*n)}, nil
}

// DeleteNote handles the DeleteNote RPC
func (s *Server) DeleteNote(ctx context.Context, req *DeleteNoteRequest) (*Empty, error) {
	if err := s.NoteService.Delete(ctx, req.ID); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}

// GetComment handles the GetComment RPC
func (s *Server) GetComment(ctx context.Context, req *GetCommentRequest) (*CommentResponse, error) {
	c, err := s.NoteService.GetComment(ctx, req.NoteID, req.CommentID)
	if err != nil {
		return nil, mapError(err)
	}
	return &CommentResponse{Comment: Comment{ID: c.ID, Text: c.Text}}, nil
}

// AddComment handles the AddComment RPC
func (s *Server) AddComment(ctx context.Context, req *AddCommentRequest) (*CommentResponse, error) {
	c, err := s.NoteService.AddComment(ctx, req.NoteID, req.Text)
	if err != nil {
		return nil, mapError(err)
	}
	return &CommentResponse{Comment: Comment{ID: c.ID, Text: c.Text}}, nil
}

// Info handles the Info RPC
func (s *Server) Info(ctx context.Context, _ *Empty) (*InfoResponse, error) {
	return &InfoResponse{
		Version:   s.BuildInfo.Version,
		Status:    s.BuildInfo.Status,
		GoVersion: runtime.Version(),
	}, nil
}

func instrumentToWire(i domain.Instrument) Instrument {
	return Instrument{
		ID:       i.ID,
		Ticker:   i.Ticker,
		Currency: i.Currency,
		Market:   i.Market,
		Type:     i.Type,
	}
}

func transactionToWire(tx domain.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID,
		InstrumentID: tx.InstrumentID,
		Type:         string(tx.Type),
		Quantity:     tx.Quantity,
		Price:        tx.Price,
		Date:         tx.Date.Format(domain.DateLayout),
	}
}

func noteToWire(n domain.Note) Note {
	comments := make([]Comment, 0, len(n.Comments))
	for _, c := range n.Comments {
		comments = append(comments, Comment{ID: c.ID, Text: c.Text})
	}
	return Note{
		ID:       n.ID,
		Title:    n.Title,
		Content:  n.Content,
		Author:   n.Author,
		Comments: comments,
	}
}

// parseOptionalDate parses a YYYY-MM-DD request field; empty means absent
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return &d, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		// Default to Internal error for unknown errors
		return status.Error(codes.Internal, err.Error())
	}
}
