/*
projector.go - The facade the host (dashboard/reporting layer) calls

PURPOSE:
  Wires the leaf components together into the three call shapes the host
  consumes: salary projection (with adjustment netting), recurring-payment
  projection (with a filtered credit/loan variant), and the upcoming list.

DATA FLOW:
  window -> Generate (per rule) -> NetFor (per occurrence, salary only)
         -> FinalAmount -> Aggregate -> ProjectionResult

STATE:
  None. The projector carries only an optional logger for data-quality
  warnings. Every projection is re-derived from its inputs, so results
  are safe to memoize on (inputs version, window) - see the cache package.
*/
package engine

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Projector is the engine facade. The zero value is usable; Log may be nil.
type Projector struct {
	Log *slog.Logger
}

// ProjectSalaries expands each salary rule over the window, nets one-off
// adjustments into the right occurrence exactly once per entity and
// period, clamps each paid amount at zero, and aggregates per-day.
func (p *Projector) ProjectSalaries(rules []RecurrenceRule, adjustments []Adjustment, window Window) ProjectionResult {
	result := NewProjectionResult()
	if window.IsEmpty() {
		return result
	}

	for _, rule := range rules {
		rule := p.checkRule(rule)

		// Fresh consumed set per entity evaluation; never shared.
		consumed := NewConsumedPeriods()
		occs := Generate(rule, window)

		base := rule.BaseAmount
		partial := Aggregate(occs, func(occ Occurrence) decimal.Decimal {
			net := NetFor(occ.EntityID, occ.PeriodKey, occ.Date, adjustments, consumed)
			return FinalAmount(base, net)
		})
		result = result.Merge(partial)
	}
	return result
}

// ProjectRecurring expands generic recurring-payment rules over the window
// and aggregates their base amounts. No adjustment netting applies.
func (p *Projector) ProjectRecurring(rules []RecurrenceRule, window Window) ProjectionResult {
	return p.ProjectRecurringFiltered(rules, window, nil)
}

// ProjectRecurringFiltered is ProjectRecurring restricted to rules for
// which keep returns true (nil keep means all). Used for the credit/loan
// subset; the sub-total is a genuine re-aggregation, not a subtraction.
func (p *Projector) ProjectRecurringFiltered(rules []RecurrenceRule, window Window, keep func(RecurrenceRule) bool) ProjectionResult {
	result := NewProjectionResult()
	if window.IsEmpty() {
		return result
	}

	for _, rule := range rules {
		if keep != nil && !keep(rule) {
			continue
		}
		rule := p.checkRule(rule)

		base := rule.BaseAmount
		partial := Aggregate(Generate(rule, window), func(Occurrence) decimal.Decimal {
			return base
		})
		result = result.Merge(partial)
	}
	return result
}

// Upcoming merges the sources into the near-term due list.
func (p *Projector) Upcoming(sources []ObligationSource, horizonDays, limit int, today Date) []UpcomingItem {
	return SelectUpcoming(sources, horizonDays, limit, today)
}

// checkRule normalizes data-quality issues on a rule and logs them.
// It never rejects: unknown frequencies fail closed to monthly and
// negative base amounts are floored at zero.
func (p *Projector) checkRule(rule RecurrenceRule) RecurrenceRule {
	if freq, ok := NormalizeFrequency(string(rule.Frequency)); !ok {
		p.warn("unknown frequency, using monthly",
			"rule_id", rule.ID, "frequency", string(rule.Frequency))
		rule.Frequency = freq
	}
	if rule.BaseAmount.IsNegative() {
		p.warn("negative base amount, using zero", "rule_id", rule.ID)
		rule.BaseAmount = decimal.Zero
	}
	return rule
}

func (p *Projector) warn(msg string, args ...any) {
	if p.Log != nil {
		p.Log.Warn(msg, args...)
	}
}
