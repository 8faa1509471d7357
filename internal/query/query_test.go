package query

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sp94dev/wallet-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id     int64
	name   string
	kind   string
	amount decimal.Decimal
	day    time.Time
}

var rowFields = SortFields[row]{
	"name":   ByOrdered(func(r row) string { return r.name }),
	"kind":   ByOrdered(func(r row) string { return r.kind }),
	"id":     ByOrdered(func(r row) int64 { return r.id }),
	"amount": ByDecimal(func(r row) decimal.Decimal { return r.amount }),
	"day":    ByTime(func(r row) time.Time { return r.day }),
}

func sampleRows() []row {
	return []row{
		{id: 1, name: "tsla", kind: "STOCK", amount: decimal.NewFromInt(30), day: domain.NewDate(2024, 3, 1)},
		{id: 2, name: "googl", kind: "ETF", amount: decimal.NewFromInt(10), day: domain.NewDate(2024, 1, 1)},
		{id: 3, name: "aapl", kind: "STOCK", amount: decimal.NewFromInt(20), day: domain.NewDate(2024, 2, 1)},
		{id: 4, name: "amzn", kind: "stock", amount: decimal.NewFromInt(10), day: domain.NewDate(2024, 2, 1)},
	}
}

func ids(rows []row) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.id)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func kindOf(r row) string { return r.kind }
func nameOf(r row) string { return r.name }

func TestEqualFold(t *testing.T) {
	got := Filter(sampleRows(), EqualFold(ptr("stock"), kindOf))
	assert.Equal(t, []int64{1, 3, 4}, ids(got))
}

func TestEqualFold_NilMatchesEverything(t *testing.T) {
	got := Filter(sampleRows(), EqualFold(nil, kindOf))
	assert.Len(t, got, 4)
}

func TestContainsFold(t *testing.T) {
	got := Filter(sampleRows(), ContainsFold(ptr("A"), nameOf))
	assert.Equal(t, []int64{1, 3, 4}, ids(got))

	got = Filter(sampleRows(), ContainsFold(ptr("OOG"), nameOf))
	assert.Equal(t, []int64{2}, ids(got))
}

func TestContainsFold_EmptyNeedleMatchesEverything(t *testing.T) {
	got := Filter(sampleRows(), ContainsFold(ptr(""), nameOf))
	assert.Len(t, got, 4)
}

func TestEqual(t *testing.T) {
	got := Filter(sampleRows(), Equal(ptr(int64(3)), func(r row) int64 { return r.id }))
	assert.Equal(t, []int64{3}, ids(got))
}

func TestWithin(t *testing.T) {
	from := domain.NewDate(2024, 2, 1)
	to := domain.NewDate(2024, 2, 29)
	day := func(r row) time.Time { return r.day }

	assert.Equal(t, []int64{3, 4}, ids(Filter(sampleRows(), Within(&from, &to, day))))
	assert.Equal(t, []int64{1, 3, 4}, ids(Filter(sampleRows(), Within(&from, nil, day))))
	assert.Equal(t, []int64{2, 3, 4}, ids(Filter(sampleRows(), Within(nil, &to, day))))
	assert.Len(t, Filter(sampleRows(), Within(nil, nil, day)), 4)
}

func TestFilter_IsIntersection(t *testing.T) {
	p1 := EqualFold(ptr("stock"), kindOf)
	p2 := ContainsFold(ptr("a"), nameOf)

	both := Filter(sampleRows(), p1, p2)
	chained := Filter(Filter(sampleRows(), p1), p2)

	assert.Equal(t, chained, both)
	assert.Equal(t, []int64{1, 3, 4}, ids(both))
}

func TestSelect_SortByString(t *testing.T) {
	got, err := Select(sampleRows(), nil, rowFields, Options{Sort: "name"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 2, 1}, ids(got))
}

func TestSelect_SortIsStable(t *testing.T) {
	got, err := Select(sampleRows(), nil, rowFields, Options{Sort: "amount"})
	require.NoError(t, err)
	// rows 2 and 4 tie on amount and keep insertion order
	assert.Equal(t, []int64{2, 4, 3, 1}, ids(got))

	got, err = Select(sampleRows(), nil, rowFields, Options{Sort: "day"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 1}, ids(got))
}

func TestSelect_SortedOutputIsNonDecreasing(t *testing.T) {
	for _, field := range rowFields.Names() {
		t.Run(field, func(t *testing.T) {
			got, err := Select(sampleRows(), nil, rowFields, Options{Sort: field})
			require.NoError(t, err)
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, rowFields[field](got[i-1], got[i]), 0)
			}
		})
	}
}

func TestSelect_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit *int
		want  []int64
	}{
		{name: "Nil limit is unbounded", limit: nil, want: []int64{3, 4, 2, 1}},
		{name: "Zero limit yields nothing", limit: ptr(0), want: []int64{}},
		{name: "Limit truncates after sorting", limit: ptr(2), want: []int64{3, 4}},
		{name: "Limit above count returns all", limit: ptr(10), want: []int64{3, 4, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(sampleRows(), nil, rowFields, Options{Sort: "name", Limit: tt.limit})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSelect_FilterSortLimit(t *testing.T) {
	got, err := Select(
		sampleRows(),
		[]Predicate[row]{EqualFold(ptr("STOCK"), kindOf)},
		rowFields,
		Options{Sort: "name", Limit: ptr(2)},
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids(got))
}

func TestSelect_UnknownSortField(t *testing.T) {
	got, err := Select(sampleRows(), nil, rowFields, Options{Sort: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Nil(t, got)
}

func TestSelect_NegativeLimit(t *testing.T) {
	_, err := Select(sampleRows(), nil, rowFields, Options{Limit: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSelect_DoesNotReorderInput(t *testing.T) {
	input := sampleRows()
	_, err := Select(input, nil, rowFields, Options{Sort: "name"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(input))
}

func TestSortFields_Names(t *testing.T) {
	assert.Equal(t, []string{"amount", "day", "id", "kind", "name"}, rowFields.Names())
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		want       []int64
	}{
		{name: "First page", page: 0, size: 3, want: []int64{1, 2, 3}},
		{name: "Partial last page", page: 1, size: 3, want: []int64{4}},
		{name: "Page past the end", page: 5, size: 3, want: []int64{}},
		{name: "Exactly at the end", page: 2, size: 2, want: []int64{}},
		{name: "Size larger than input", page: 0, size: 10, want: []int64{1, 2, 3, 4}},
		{name: "Huge size past the end", page: 1, size: math.MaxInt, want: []int64{}},
		{name: "Huge size on first page", page: 0, size: math.MaxInt, want: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Paginate(sampleRows(), tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestPaginate_InvalidArguments(t *testing.T) {
	_, err := Paginate(sampleRows(), -1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Paginate(sampleRows(), 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
