/*
aggregate.go - Per-date buckets and window totals

PURPOSE:
  Folds occurrences into {perDate, total}. This is what the summary cards
  and charts consume, so the one contract that matters is additivity:
  Total always equals the sum of the per-date buckets. Both are built in
  the same pass from the same amounts, so they cannot drift.

SUB-TOTALS:
  Category sub-totals (e.g. credit/loan only) are produced by re-running
  aggregation on a filtered occurrence slice - never by subtracting one
  result from another.
*/
package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ProjectionResult is the aggregated output of one projection run.
// Invariant: Total == sum of PerDate values.
type ProjectionResult struct {
	PerDate map[string]decimal.Decimal
	Total   decimal.Decimal
}

// NewProjectionResult returns an empty, zero-valued result.
func NewProjectionResult() ProjectionResult {
	return ProjectionResult{PerDate: make(map[string]decimal.Decimal), Total: decimal.Zero}
}

// Aggregate folds occurrences into per-date buckets and a running total.
// amountOf is evaluated exactly once per occurrence, in date order, which
// is what lets callers thread stateful netting through it safely.
func Aggregate(occurrences []Occurrence, amountOf func(Occurrence) decimal.Decimal) ProjectionResult {
	result := NewProjectionResult()
	for _, occ := range occurrences {
		amount := amountOf(occ)
		key := occ.Date.ISO()
		result.PerDate[key] = result.PerDate[key].Add(amount)
		result.Total = result.Total.Add(amount)
	}
	return result
}

// Merge adds another result into this one, bucket by bucket, and returns
// the combined result. Used to build the chart's grand-total series.
func (r ProjectionResult) Merge(other ProjectionResult) ProjectionResult {
	merged := NewProjectionResult()
	for k, v := range r.PerDate {
		merged.PerDate[k] = merged.PerDate[k].Add(v)
	}
	for k, v := range other.PerDate {
		merged.PerDate[k] = merged.PerDate[k].Add(v)
	}
	merged.Total = r.Total.Add(other.Total)
	return merged
}

// Dates returns the bucketed dates in ascending ISO order.
func (r ProjectionResult) Dates() []string {
	dates := make([]string, 0, len(r.PerDate))
	for k := range r.PerDate {
		dates = append(dates, k)
	}
	sort.Strings(dates)
	return dates
}

// Filter returns the occurrences for which keep is true. Sub-totals are
// built by filtering and re-aggregating, not by post-hoc subtraction.
func Filter(occurrences []Occurrence, keep func(Occurrence) bool) []Occurrence {
	var out []Occurrence
	for _, occ := range occurrences {
		if keep(occ) {
			out = append(out, occ)
		}
	}
	return out
}
