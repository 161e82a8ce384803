/*
upcoming.go - Near-term due list merged across obligation sources

PURPOSE:
  Merges recurring payments, salary paydays, and ad-hoc debts into one
  sorted, capped "coming up" list for the dashboard. Each source only
  knows its own items; this selector namespaces their IDs, filters to the
  horizon, sorts, and truncates.
*/
package engine

import "sort"

// SelectUpcoming merges items from all sources due within
// [today, today+horizonDays], sorted ascending by due date and truncated
// to limit. IDs are namespaced "source:originalID" so sources cannot
// collide. Empty sources yield an empty list; there are no error cases.
func SelectUpcoming(sources []ObligationSource, horizonDays, limit int, today Date) []UpcomingItem {
	if horizonDays < 0 || limit <= 0 {
		return nil
	}
	horizon := today.AddDays(horizonDays)

	var merged []UpcomingItem
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, item := range src.Items(today, horizon) {
			// Sources are trusted to pre-filter, but the horizon contract is
			// enforced here regardless.
			if item.DueDate.Before(today) || item.DueDate.After(horizon) {
				continue
			}
			item.ID = src.SourceID() + ":" + item.ID
			merged = append(merged, item)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].DueDate.Equal(merged[j].DueDate) {
			return merged[i].DueDate.Before(merged[j].DueDate)
		}
		// Deterministic order for equal due dates.
		return merged[i].ID < merged[j].ID
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
