/*
adjustments.go - One-shot adjustment netting per calendar period

PURPOSE:
  Computes the net delta that one-off adjustments (bonus, overtime,
  commission, advance) contribute to a single occurrence, and guarantees
  that a calendar period is consumed at most once per projection run.

WHY THE CONSUMED SET:
  The generator may be re-evaluated, and upstream data can momentarily
  produce two occurrences in the same calendar period. Without the set, a
  February bonus would be added to both and the totals would drift. The
  set is the ONLY mutable state in the engine and it is scoped to one
  entity's evaluation inside one window call - never shared across
  entities, never reused across calls.

NETTING RULES:
  increases: every increase for the entity whose effective date falls in
             the period's calendar span.
  decreases: same span, plus effectiveDate <= occurrenceDate. An advance
             taken after the pay date does not reduce that payment.
  result:    increases - decreases. May be negative; the caller clamps
             the final paid amount with FinalAmount.

INVARIANT:
  finalAmount = max(0, baseAmount + net)
*/
package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ConsumedPeriods tracks which period keys have already absorbed their
// adjustments during one entity's window evaluation. Start every entity
// with a fresh set; do not share it across entities.
type ConsumedPeriods map[string]struct{}

func NewConsumedPeriods() ConsumedPeriods { return make(ConsumedPeriods) }

func (c ConsumedPeriods) Has(periodKey string) bool {
	_, ok := c[periodKey]
	return ok
}

func (c ConsumedPeriods) Mark(periodKey string) { c[periodKey] = struct{}{} }

// NetFor returns the net adjustment delta for one occurrence and marks its
// period consumed. A second occurrence in an already-consumed period gets
// zero. The result may be negative.
func NetFor(entityID, periodKey string, occurrenceDate Date, adjustments []Adjustment, consumed ConsumedPeriods) decimal.Decimal {
	if consumed.Has(periodKey) {
		return decimal.Zero
	}
	consumed.Mark(periodKey)

	spanStart, spanEnd := periodSpan(periodKey, occurrenceDate)

	net := decimal.Zero
	for _, adj := range adjustments {
		if adj.EntityID != entityID {
			continue
		}
		if adj.EffectiveDate.Before(spanStart) || adj.EffectiveDate.After(spanEnd) {
			continue
		}
		switch adj.Kind {
		case AdjustIncrease:
			net = net.Add(adj.Amount)
		case AdjustDecrease:
			// An advance taken after the pay date doesn't reduce this payment.
			if adj.EffectiveDate.BeforeOrEqual(occurrenceDate) {
				net = net.Sub(adj.Amount)
			}
		}
	}
	return net
}

// FinalAmount applies a net adjustment to a base amount and clamps at zero.
// A payment can be reduced to nothing but never goes negative.
func FinalAmount(base, net decimal.Decimal) decimal.Decimal {
	final := base.Add(net)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// periodSpan derives the calendar span of a period key. Month-form keys
// ("entity|2024-02") span the whole month; date-form keys span the single
// occurrence day. Unparseable keys fall back to the occurrence day.
func periodSpan(periodKey string, occurrenceDate Date) (Date, Date) {
	i := strings.LastIndexByte(periodKey, '|')
	if i >= 0 && len(periodKey)-i-1 == len("2006-01") {
		// Month-form key: span the occurrence's calendar month.
		return StartOfMonth(occurrenceDate.Year(), occurrenceDate.Month()),
			EndOfMonth(occurrenceDate.Year(), occurrenceDate.Month())
	}
	return occurrenceDate, occurrenceDate
}
