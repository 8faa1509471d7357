package query

import "github.com/shopspring/decimal"

// CountBy counts records per distinct key. The result is never nil.
func CountBy[R any, K comparable](records []R, key func(R) K) map[K]int {
	counts := make(map[K]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// SumBy sums value over records per distinct key. The result is never nil.
func SumBy[R any, K comparable](records []R, key func(R) K, value func(R) decimal.Decimal) map[K]decimal.Decimal {
	sums := make(map[K]decimal.Decimal)
	for _, r := range records {
		k := key(r)
		sums[k] = sums[k].Add(value(r))
	}
	return sums
}
