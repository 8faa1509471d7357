package instrument

import (
	"context"
	"fmt"

	"github.com/sp94dev/wallet-manager/internal/domain"
	"github.com/sp94dev/wallet-manager/internal/query"
	"go.uber.org/zap"
)

// SortFields enumerates the fields instruments can be sorted by
var SortFields = query.SortFields[domain.Instrument]{
	"ticker":   query.ByOrdered(func(i domain.Instrument) string { return i.Ticker }),
	"currency": query.ByOrdered(func(i domain.Instrument) string { return i.Currency }),
	"market":   query.ByOrdered(func(i domain.Instrument) string { return i.Market }),
	"type":     query.ByOrdered(func(i domain.Instrument) string { return i.Type }),
}

// UpdateInstrumentInput represents a partial instrument update.
// Nil fields keep their stored value.
type UpdateInstrumentInput struct {
	Ticker   *string
	Currency *string
	Market   *string
	Type     *string
}

// InstrumentService handles instrument operations
type InstrumentService struct {
	InstrumentRepo domain.InstrumentRepository
	IDs            domain.IDAllocator
	Logger         *zap.Logger
}

// NewInstrumentService creates a new InstrumentService instance
func NewInstrumentService(repo domain.InstrumentRepository, ids domain.IDAllocator, logger *zap.Logger) *InstrumentService {
	return &InstrumentService{
		InstrumentRepo: repo,
		IDs:            ids,
		Logger:         logger,
	}
}

// List returns the instruments matching every filter, optionally sorted and limited
func (s *InstrumentService) List(ctx context.Context, q domain.InstrumentQuery) ([]domain.Instrument, error) {
	opts := query.Options{Sort: q.Sort, Limit: q.Limit}
	if err := query.Validate(SortFields, opts); err != nil {
		return nil, err
	}

	instruments, err := s.InstrumentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	predicates := []query.Predicate[domain.Instrument]{
		query.EqualFold(q.Filter.Type, func(i domain.Instrument) string { return i.Type }),
		query.EqualFold(q.Filter.Currency, func(i domain.Instrument) string { return i.Currency }),
		query.ContainsFold(q.Filter.Ticker, func(i domain.Instrument) string { return i.Ticker }),
		query.EqualFold(q.Filter.Market, func(i domain.Instrument) string { return i.Market }),
	}

	return query.Select(instruments, predicates, SortFields, opts)
}

// GetByID retrieves an instrument, failing with domain.ErrNotFound if absent
func (s *InstrumentService) GetByID(ctx context.Context, id int64) (*domain.Instrument, error) {
	instrument, ok, err := s.InstrumentRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get instrument %d: %w", id, err)
	}
	if !ok {
		return nil, notFound(id)
	}
	return &instrument, nil
}

// Create stores a new instrument under a freshly allocated ID.
// Any ID set on the input is ignored.
func (s *InstrumentService) Create(ctx context.Context, input domain.Instrument) (*domain.Instrument, error) {
	instrument := input
	instrument.ID = s.IDs.Next()

	if err := s.InstrumentRepo.Put(ctx, instrument); err != nil {
		return nil, fmt.Errorf("failed to store instrument: %w", err)
	}

	s.Logger.Debug("instrument created",
		zap.Int64("id", instrument.ID),
		zap.String("ticker", instrument.Ticker),
	)
	return &instrument, nil
}

// Update changes the provided fields of an existing instrument.
// The ID is preserved; fails with domain.ErrNotFound if absent.
func (s *InstrumentService) Update(ctx context.Context, id int64, input UpdateInstrumentInput) (*domain.Instrument, error) {
	instrument, ok, err := s.InstrumentRepo.Update(ctx, id, func(current domain.Instrument) domain.Instrument {
		return input.apply(current)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update instrument %d: %w", id, err)
	}
	if !ok {
		return nil, notFound(id)
	}

	s.Logger.Debug("instrument updated", zap.Int64("id", id))
	return &instrument, nil
}

// Delete removes an instrument, failing with domain.ErrNotFound if absent.
// Its ID is never reissued.
func (s *InstrumentService) Delete(ctx context.Context, id int64) error {
	removed, err := s.InstrumentRepo.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete instrument %d: %w", id, err)
	}
	if !removed {
		return notFound(id)
	}

	s.Logger.Debug("instrument deleted", zap.Int64("id", id))
	return nil
}

// Stats counts instruments overall, per type and per market
func (s *InstrumentService) Stats(ctx context.Context) (*domain.InstrumentStats, error) {
	instruments, err := s.InstrumentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	return &domain.InstrumentStats{
		TotalInstruments: len(instruments),
		CountByType:      query.CountBy(instruments, func(i domain.Instrument) string { return i.Type }),
		CountByMarket:    query.CountBy(instruments, func(i domain.Instrument) string { return i.Market }),
	}, nil
}

func (in UpdateInstrumentInput) apply(current domain.Instrument) domain.Instrument {
	if in.Ticker != nil {
		current.Ticker = *in.Ticker
	}
	if in.Currency != nil {
		current.Currency = *in.Currency
	}
	if in.Market != nil {
		current.Market = *in.Market
	}
	if in.Type != nil {
		current.Type = *in.Type
	}
	return current
}

func notFound(id int64) error {
	return fmt.Errorf("instrument %d %w", id, domain.ErrNotFound)
}
