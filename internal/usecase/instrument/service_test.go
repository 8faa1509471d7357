package instrument

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sp94dev/wallet-manager/internal/adapter/repository/memory"
	"github.com/sp94dev/wallet-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockInstrumentRepository is a mock implementation of InstrumentRepository for testing
type MockInstrumentRepository struct {
	mock.Mock
}

func (m *MockInstrumentRepository) Put(ctx context.Context, instrument domain.Instrument) error {
	args := m.Called(ctx, instrument)
	return args.Error(0)
}

func (m *MockInstrumentRepository) Get(ctx context.Context, id int64) (domain.Instrument, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Instrument), args.Bool(1), args.Error(2)
}

func (m *MockInstrumentRepository) Update(ctx context.Context, id int64, fn func(domain.Instrument) domain.Instrument) (domain.Instrument, bool, error) {
	args := m.Called(ctx, id, fn)
	return args.Get(0).(domain.Instrument), args.Bool(1), args.Error(2)
}

func (m *MockInstrumentRepository) Remove(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInstrumentRepository) List(ctx context.Context) ([]domain.Instrument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Instrument), args.Error(1)
}

// MockIDAllocator is a mock implementation of IDAllocator for testing
type MockIDAllocator struct {
	mock.Mock
}

func (m *MockIDAllocator) Next() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func ptr[T any](v T) *T { return &v }

func newService() *InstrumentService {
	return NewInstrumentService(memory.NewInstrumentRepository(), memory.NewSequence(), zap.NewNop())
}

func aapl() domain.Instrument {
	return domain.Instrument{Ticker: "AAPL", Currency: "USD", Market: "NASDAQ", Type: "STOCK"}
}

func googl() domain.Instrument {
	return domain.Instrument{Ticker: "GOOGL", Currency: "USD", Market: "NASDAQ", Type: "ETF"}
}

func TestCreate_AssignsIDAndIgnoresSuppliedOne(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockInstrumentRepository)
	mockIDs := new(MockIDAllocator)
	service := NewInstrumentService(mockRepo, mockIDs, zap.NewNop())

	input := aapl()
	input.ID = 999

	expected := aapl()
	expected.ID = 7

	mockIDs.On("Next").Return(int64(7))
	mockRepo.On("Put", ctx, expected).Return(nil)

	// Execute
	created, err := service.Create(ctx, input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &expected, created)

	mockRepo.AssertExpectations(t)
	mockIDs.AssertExpectations(t)
}

func TestCreate_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockInstrumentRepository)
	mockIDs := new(MockIDAllocator)
	service := NewInstrumentService(mockRepo, mockIDs, zap.NewNop())

	mockIDs.On("Next").Return(int64(1))
	mockRepo.On("Put", ctx, mock.Anything).Return(errors.New("disk on fire"))

	created, err := service.Create(ctx, aapl())

	assert.Nil(t, created)
	assert.ErrorContains(t, err, "disk on fire")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_AbsentIsNotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockInstrumentRepository)
	service := NewInstrumentService(mockRepo, new(MockIDAllocator), zap.NewNop())

	mockRepo.On("Get", ctx, int64(5)).Return(domain.Instrument{}, false, nil)

	instrument, err := service.GetByID(ctx, 5)

	assert.Nil(t, instrument)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "instrument 5 not found")
	mockRepo.AssertExpectations(t)
}

func TestList_InvalidSortDoesNotTouchRepository(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockInstrumentRepository)
	service := NewInstrumentService(mockRepo, new(MockIDAllocator), zap.NewNop())

	_, err := service.List(ctx, domain.InstrumentQuery{Sort: "bogus"})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestCreateThenGet_ReturnsInputWithAssignedID(t *testing.T) {
	ctx := context.Background()
	service := newService()

	created, err := service.Create(ctx, aapl())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)

	want := aapl()
	want.ID = created.ID
	assert.Equal(t, want, *got)
}

func TestCreate_IDsAreUniqueAndIncreasing(t *testing.T) {
	ctx := context.Background()
	service := newService()

	var last int64
	for i := 0; i < 20; i++ {
		created, err := service.Create(ctx, aapl())
		require.NoError(t, err)
		assert.Greater(t, created.ID, last)
		last = created.ID
	}
}

func TestCreate_Concurrent(t *testing.T) {
	ctx := context.Background()
	service := newService()

	const n = 100
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := service.Create(ctx, aapl())
			assert.NoError(t, err)
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, n)

	all, err := service.List(ctx, domain.InstrumentQuery{})
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestList_FilterByType(t *testing.T) {
	ctx := context.Background()
	service := newService()

	created, err := service.Create(ctx, aapl())
	require.NoError(t, err)
	_, err = service.Create(ctx, googl())
	require.NoError(t, err)

	got, err := service.List(ctx, domain.InstrumentQuery{
		Filter: domain.InstrumentFilter{Type: ptr("STOCK")},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.Instrument{*created}, got)
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	service := newService()
	for _, in := range []domain.Instrument{
		aapl(),
		googl(),
		{Ticker: "SAP", Currency: "EUR", Market: "XETRA", Type: "STOCK"},
		{Ticker: "VWCE", Currency: "EUR", Market: "XETRA", Type: "ETF"},
	} {
		_, err := service.Create(ctx, in)
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		filter  domain.InstrumentFilter
		tickers []string
	}{
		{name: "No filter", filter: domain.InstrumentFilter{}, tickers: []string{"AAPL", "GOOGL", "SAP", "VWCE"}},
		{name: "Currency is case-insensitive", filter: domain.InstrumentFilter{Currency: ptr("eur")}, tickers: []string{"SAP", "VWCE"}},
		{name: "Market equality", filter: domain.InstrumentFilter{Market: ptr("NASDAQ")}, tickers: []string{"AAPL", "GOOGL"}},
		{name: "Market is not a substring match", filter: domain.InstrumentFilter{Market: ptr("NAS")}, tickers: []string{}},
		{name: "Ticker is a substring match", filter: domain.InstrumentFilter{Ticker: ptr("a")}, tickers: []string{"AAPL", "SAP"}},
		{name: "Filters combine", filter: domain.InstrumentFilter{Type: ptr("etf"), Currency: ptr("EUR")}, tickers: []string{"VWCE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.List(ctx, domain.InstrumentQuery{Filter: tt.filter})
			require.NoError(t, err)

			tickers := make([]string, 0, len(got))
			for _, i := range got {
				tickers = append(tickers, i.Ticker)
			}
			assert.Equal(t, tt.tickers, tickers)
		})
	}
}

func TestList_SortAndLimit(t *testing.T) {
	ctx := context.Background()
	service := newService()
	for _, ticker := range []string{"TSLA", "AAPL", "MSFT", "AMZN"} {
		_, err := service.Create(ctx, domain.Instrument{Ticker: ticker, Currency: "USD", Market: "NASDAQ", Type: "STOCK"})
		require.NoError(t, err)
	}

	got, err := service.List(ctx, domain.InstrumentQuery{Sort: "ticker", Limit: ptr(3)})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "AAPL", got[0].Ticker)
	assert.Equal(t, "AMZN", got[1].Ticker)
	assert.Equal(t, "MSFT", got[2].Ticker)
}

func TestList_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.List(ctx, domain.InstrumentQuery{Sort: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = service.List(ctx, domain.InstrumentQuery{Limit: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestUpdate_PartialKeepsUnspecifiedFields(t *testing.T) {
	ctx := context.Background()
	service := newService()

	created, err := service.Create(ctx, aapl())
	require.NoError(t, err)
	_, err = service.Create(ctx, googl())
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, UpdateInstrumentInput{Market: ptr("NYSE")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "AAPL", updated.Ticker)
	assert.Equal(t, "USD", updated.Currency)
	assert.Equal(t, "NYSE", updated.Market)
	assert.Equal(t, "STOCK", updated.Type)

	all, err := service.List(ctx, domain.InstrumentQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdate_AbsentIsNotFoundAndStoreStaysEmpty(t *testing.T) {
	ctx := context.Background()
	service := newService()

	updated, err := service.Update(ctx, 999, UpdateInstrumentInput{Ticker: ptr("AAPL")})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := service.List(ctx, domain.InstrumentQuery{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	service := newService()

	created, err := service.Create(ctx, aapl())
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	_, err = service.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = service.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleted ids are never reissued
	next, err := service.Create(ctx, googl())
	require.NoError(t, err)
	assert.Equal(t, created.ID+1, next.ID)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	service := newService()

	empty, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalInstruments)
	assert.Empty(t, empty.CountByType)
	assert.Empty(t, empty.CountByMarket)

	for _, in := range []domain.Instrument{aapl(), googl(), {Ticker: "SAP", Currency: "EUR", Market: "XETRA", Type: "STOCK"}} {
		_, err := service.Create(ctx, in)
		require.NoError(t, err)
	}

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalInstruments)
	assert.Equal(t, map[string]int{"STOCK": 2, "ETF": 1}, stats.CountByType)
	assert.Equal(t, map[string]int{"NASDAQ": 2, "XETRA": 1}, stats.CountByMarket)
}
