package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sp94dev/wallet-manager/internal/domain"
	"github.com/sp94dev/wallet-manager/internal/query"
	"go.uber.org/zap"
)

// SortFields enumerates the fields transactions can be sorted by
var SortFields = query.SortFields[domain.Transaction]{
	"date":         query.ByTime(func(t domain.Transaction) time.Time { return t.Date }),
	"instrumentId": query.ByOrdered(func(t domain.Transaction) int64 { return t.InstrumentID }),
	"type":         query.ByOrdered(func(t domain.Transaction) domain.TransactionType { return t.Type }),
	"quantity":     query.ByDecimal(func(t domain.Transaction) decimal.Decimal { return t.Quantity }),
	"price":        query.ByDecimal(func(t domain.Transaction) decimal.Decimal { return t.Price }),
}

// TransactionService handles transaction recording and reporting.
// Transactions are append-only: there is no update or delete.
type TransactionService struct {
	TransactionRepo domain.TransactionRepository
	IDs             domain.IDAllocator
	Logger          *zap.Logger
}

// NewTransactionService creates a new TransactionService instance
func NewTransactionService(repo domain.TransactionRepository, ids domain.IDAllocator, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		TransactionRepo: repo,
		IDs:             ids,
		Logger:          logger,
	}
}

// List returns the transactions matching every filter, optionally sorted and limited
func (s *TransactionService) List(ctx context.Context, q domain.TransactionQuery) ([]domain.Transaction, error) {
	opts := query.Options{Sort: q.Sort, Limit: q.Limit}
	if err := query.Validate(SortFields, opts); err != nil {
		return nil, err
	}
	if err := q.Filter.Validate(); err != nil {
		return nil, err
	}

	transactions, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	predicates := []query.Predicate[domain.Transaction]{
		query.Equal(q.Filter.InstrumentID, func(t domain.Transaction) int64 { return t.InstrumentID }),
		query.EqualFold(q.Filter.Type, func(t domain.Transaction) string { return string(t.Type) }),
		query.Within(q.Filter.From, q.Filter.To, func(t domain.Transaction) time.Time { return t.Date }),
	}

	return query.Select(transactions, predicates, SortFields, opts)
}

// GetByID retrieves a transaction, failing with domain.ErrNotFound if absent
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	tx, ok, err := s.TransactionRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}
	if !ok {
		return nil, fmt.Errorf("transaction %d %w", id, domain.ErrNotFound)
	}
	return &tx, nil
}

// Create records a new transaction under a freshly allocated ID.
// Any ID set on the input is ignored. The instrument reference, type and
// quantity sign are stored as given.
func (s *TransactionService) Create(ctx context.Context, input domain.Transaction) (*domain.Transaction, error) {
	tx := input
	tx.ID = s.IDs.Next()

	if err := s.TransactionRepo.Put(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	s.Logger.Debug("transaction recorded",
		zap.Int64("id", tx.ID),
		zap.Int64("instrument_id", tx.InstrumentID),
		zap.String("type", string(tx.Type)),
	)
	return &tx, nil
}

// Stats summarizes every stored transaction
func (s *TransactionService) Stats(ctx context.Context) (*domain.TransactionStats, error) {
	transactions, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	stats := Summarize(transactions)
	return &stats, nil
}

// Summarize computes the total count, the count per type and the summed
// price × quantity per instrument. An empty input yields zero and empty maps.
func Summarize(transactions []domain.Transaction) domain.TransactionStats {
	return domain.TransactionStats{
		TotalTransactions: len(transactions),
		CountByType: query.CountBy(transactions, func(t domain.Transaction) domain.TransactionType {
			return t.Type
		}),
		TotalValueByInstrument: query.SumBy(transactions,
			func(t domain.Transaction) int64 { return t.InstrumentID },
			domain.Transaction.Value,
		),
	}
}
