// Package query selects records from an in-memory snapshot: conjunctive
// predicate filtering, sorting over an enumerated set of fields, result
// limiting and page/size slicing. It also provides the grouping helpers
// used for statistics.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sp94dev/wallet-manager/internal/domain"
)

// Predicate reports whether a record satisfies one field constraint
type Predicate[R any] func(R) bool

// Compare orders two records by one field, returning -1, 0 or +1
type Compare[R any] func(a, b R) int

// SortFields enumerates the fields a record kind can be sorted by
type SortFields[R any] map[string]Compare[R]

// Names returns the sortable field names in lexical order
func (f SortFields[R]) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Options controls ordering and truncation of a selection.
// An empty Sort keeps insertion order; a nil Limit is unbounded.
type Options struct {
	Sort  string
	Limit *int
}

// always is the predicate used for absent constraints
func always[R any](R) bool { return true }

// EqualFold matches records whose field equals want, ignoring case.
// A nil want matches every record.
func EqualFold[R any](want *string, field func(R) string) Predicate[R] {
	if want == nil {
		return always[R]
	}
	w := *want
	return func(r R) bool {
		return strings.EqualFold(field(r), w)
	}
}

// ContainsFold matches records whose field contains want, ignoring case.
// A nil want matches every record.
func ContainsFold[R any](want *string, field func(R) string) Predicate[R] {
	if want == nil {
		return always[R]
	}
	w := strings.ToLower(*want)
	return func(r R) bool {
		return strings.Contains(strings.ToLower(field(r)), w)
	}
}

// Equal matches records whose field equals want.
// A nil want matches every record.
func Equal[R any, T comparable](want *T, field func(R) T) Predicate[R] {
	if want == nil {
		return always[R]
	}
	w := *want
	return func(r R) bool {
		return field(r) == w
	}
}

// Within matches records whose time field lies in [from, to].
// Either bound may be nil.
func Within[R any](from, to *time.Time, field func(R) time.Time) Predicate[R] {
	if from == nil && to == nil {
		return always[R]
	}
	return func(r R) bool {
		t := field(r)
		if from != nil && t.Before(*from) {
			return false
		}
		if to != nil && t.After(*to) {
			return false
		}
		return true
	}
}

// ByOrdered compares records by an ordered field (strings lexicographically)
func ByOrdered[R any, T cmp.Ordered](field func(R) T) Compare[R] {
	return func(a, b R) int {
		return cmp.Compare(field(a), field(b))
	}
}

// ByDecimal compares records by a decimal field
func ByDecimal[R any](field func(R) decimal.Decimal) Compare[R] {
	return func(a, b R) int {
		return field(a).Cmp(field(b))
	}
}

// ByTime compares records by a time field
func ByTime[R any](field func(R) time.Time) Compare[R] {
	return func(a, b R) int {
		return field(a).Compare(field(b))
	}
}

// Filter returns the records matching every predicate, preserving order.
// The result never aliases records.
func Filter[R any](records []R, predicates ...Predicate[R]) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if matches(r, predicates) {
			out = append(out, r)
		}
	}
	return out
}

func matches[R any](r R, predicates []Predicate[R]) bool {
	for _, p := range predicates {
		if !p(r) {
			return false
		}
	}
	return true
}

// Validate checks opts against the sortable fields without touching any records
func Validate[R any](fields SortFields[R], opts Options) error {
	if opts.Sort != "" {
		if _, ok := fields[opts.Sort]; !ok {
			return fmt.Errorf("%w: unknown sort field %q, expected one of %s",
				domain.ErrInvalidArgument, opts.Sort, strings.Join(fields.Names(), ", "))
		}
	}
	if opts.Limit != nil && *opts.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", domain.ErrInvalidArgument, *opts.Limit)
	}
	return nil
}

// Select filters records by the conjunction of predicates, then stably sorts
// by opts.Sort and truncates to opts.Limit. Options are validated before any
// work is done.
func Select[R any](records []R, predicates []Predicate[R], fields SortFields[R], opts Options) ([]R, error) {
	if err := Validate(fields, opts); err != nil {
		return nil, err
	}

	out := Filter(records, predicates...)

	if opts.Sort != "" {
		slices.SortStableFunc(out, fields[opts.Sort])
	}

	if opts.Limit != nil && *opts.Limit < len(out) {
		out = out[:*opts.Limit]
	}

	return out, nil
}

// Paginate returns the zero-based page of the given size.
// A page starting past the end yields an empty slice.
func Paginate[R any](records []R, page, size int) ([]R, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative, got %d", domain.ErrInvalidArgument, page)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", domain.ErrInvalidArgument, size)
	}

	start := len(records)
	if page <= len(records)/size {
		start = min(page*size, len(records))
	}
	end := start + min(size, len(records)-start)

	return slices.Clone(records[start:end]), nil
}
