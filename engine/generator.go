/*
generator.go - Occurrence expansion for one recurrence rule

PURPOSE:
  Expands a RecurrenceRule into the finite list of dates it fires on
  inside a window. This is the calendar-arithmetic heart of the engine
  and the piece most likely to loop forever when fed garbage, so the
  loop carries an explicit termination invariant.

ALGORITHM:
  1. Seed the candidate from the rule's anchor.
  2. Step forward (weekly +7d, biweekly +14d, monthly/quarterly/yearly
     +1/+3/+12 months with day-of-month clamping) until the candidate
     reaches the window start.
  3. Emit while the candidate stays inside the window.
  4. TERMINATION GUARD: if a step ever fails to strictly advance the
     candidate, stop immediately. With the built-in frequencies this
     cannot happen; the guard protects against future step functions
     and corrupted dates, and is tested directly.

PERIOD KEYS:
  monthly/quarterly/yearly -> entity + year-month of the occurrence
  weekly/biweekly          -> entity + the occurrence date itself

  Weekly-family occurrences are each their own period because salary
  adjustments are monthly-cycle concepts in this domain.

FAILURE SEMANTICS:
  Inactive rule or empty window -> nil. No error returns: expansion of
  normal or malformed input never fails, it degrades.
*/
package engine

import "fmt"

// maxOccurrences bounds a single expansion. A window big enough to hit it
// (thousands of years of weekly payments) is a data problem, not a use case.
const maxOccurrences = 10000

// Generate expands one rule over a window. The result is finite, sorted
// ascending, strictly increasing, and fully contained in the window.
// Calling it again with the same inputs yields the same sequence.
func Generate(rule RecurrenceRule, window Window) []Occurrence {
	if !rule.Active || window.IsEmpty() || rule.Anchor.IsZero() {
		return nil
	}

	freq, _ := NormalizeFrequency(string(rule.Frequency))
	anchorDay := rule.anchorDay()

	step := func(d Date) Date {
		if days := freq.daysPerStep(); days > 0 {
			return d.AddDays(days)
		}
		return d.AddMonths(freq.monthsPerStep(), anchorDay)
	}

	keyFor := func(d Date) string {
		return PeriodKey(rule.EntityID, d, freq)
	}

	dates := expand(rule.Anchor, step, window)
	occs := make([]Occurrence, 0, len(dates))
	for _, d := range dates {
		occs = append(occs, Occurrence{
			RuleID:    rule.ID,
			EntityID:  rule.EntityID,
			Date:      d,
			PeriodKey: keyFor(d),
		})
	}
	return occs
}

// expand runs the seed-advance-emit loop with the termination guard.
// Split out so the guard can be exercised with a degenerate step function.
func expand(anchor Date, step func(Date) Date, window Window) []Date {
	candidate := anchor

	// Seed: walk the candidate up to the window start.
	for candidate.Before(window.Start) {
		next := step(candidate)
		if !next.After(candidate) {
			// Non-advancing step: degenerate rule, bail out.
			return nil
		}
		candidate = next
	}

	// Emit while inside the window.
	var dates []Date
	for candidate.BeforeOrEqual(window.End) && len(dates) < maxOccurrences {
		dates = append(dates, candidate)
		next := step(candidate)
		if !next.After(candidate) {
			break
		}
		candidate = next
	}
	return dates
}

// PeriodKey returns the stable identifier of the calendar period an
// occurrence belongs to. It is the idempotency key for adjustment netting:
// two occurrences sharing a key consume at most one set of adjustments.
func PeriodKey(entityID string, d Date, freq Frequency) string {
	if freq.monthsPerStep() > 0 {
		return fmt.Sprintf("%s|%04d-%02d", entityID, d.Year(), int(d.Month()))
	}
	return entityID + "|" + d.ISO()
}
