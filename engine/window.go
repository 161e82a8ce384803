/*
window.go - Projection windows and the named range resolver

PURPOSE:
  A Window is the [start, end] span over which obligations are expanded.
  Every projection call receives one. The resolver maps the UI's named
  selectors ("last_30", "this_month", ...) to concrete windows anchored on
  an injected "today" - the engine never reads the system clock.

KEY INVARIANT:
  start <= end. A window violating this is "empty" and every component
  downstream returns zero-valued results for it. The resolver itself can
  never produce an empty window.

SELECTOR FAMILIES:
  Backward:  last_7 ... last_90       [today-N, today]
  Forward:   next_7 ... next_30       [today, today+N]
  Calendar:  this_month, next_month   real month boundaries, not 30 days
  Symmetric: around_15, around_30     [today-N, today+N]

  Anything else falls back to last_30. The resolver is total: there is no
  error path.

SEE ALSO:
  - generator.go: expands rules over a window
  - projector.go: facade that threads windows through every component
*/
package engine

// Window is the inclusive [Start, End] date range of one projection run,
// plus the human label the UI showed for it.
type Window struct {
	Start Date
	End   Date
	Label string
}

// IsEmpty reports whether the window selects no days at all. Empty windows
// are valid input everywhere and yield zero-valued results.
func (w Window) IsEmpty() bool {
	return w.Start.IsZero() || w.End.IsZero() || w.Start.After(w.End)
}

// Contains reports whether the date falls inside [Start, End].
func (w Window) Contains(d Date) bool {
	return d.AfterOrEqual(w.Start) && d.BeforeOrEqual(w.End)
}

func (w Window) String() string {
	return "[" + w.Start.String() + ", " + w.End.String() + "]"
}

// =============================================================================
// RANGE RESOLVER
// =============================================================================

// ResolveRange maps a named selector to a concrete window around 'today'.
// Pure and total: unrecognized selectors resolve to the last 30 days.
func ResolveRange(selector string, today Date) Window {
	switch selector {
	case "last_7":
		return Window{Start: today.AddDays(-7), End: today, Label: "Last 7 days"}
	case "last_14":
		return Window{Start: today.AddDays(-14), End: today, Label: "Last 14 days"}
	case "last_30":
		return Window{Start: today.AddDays(-30), End: today, Label: "Last 30 days"}
	case "last_60":
		return Window{Start: today.AddDays(-60), End: today, Label: "Last 60 days"}
	case "last_90":
		return Window{Start: today.AddDays(-90), End: today, Label: "Last 90 days"}

	case "next_7":
		return Window{Start: today, End: today.AddDays(7), Label: "Next 7 days"}
	case "next_15":
		return Window{Start: today, End: today.AddDays(15), Label: "Next 15 days"}
	case "next_30":
		return Window{Start: today, End: today.AddDays(30), Label: "Next 30 days"}

	case "this_month":
		return Window{
			Start: StartOfMonth(today.Year(), today.Month()),
			End:   EndOfMonth(today.Year(), today.Month()),
			Label: "This month",
		}
	case "next_month":
		next := StartOfMonth(today.Year(), today.Month()).AddMonths(1, 1)
		return Window{
			Start: next,
			End:   EndOfMonth(next.Year(), next.Month()),
			Label: "Next month",
		}

	case "around_15":
		return Window{Start: today.AddDays(-15), End: today.AddDays(15), Label: "±15 days"}
	case "around_30":
		return Window{Start: today.AddDays(-30), End: today.AddDays(30), Label: "±30 days"}

	default:
		return Window{Start: today.AddDays(-30), End: today, Label: "Last 30 days"}
	}
}
