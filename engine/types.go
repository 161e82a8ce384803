/*
Package engine expands periodic financial obligations into concrete
occurrences over a date window and aggregates them for summary display.

PURPOSE:
  This package contains the domain-agnostic projection machinery. Whether
  the obligation is a monthly salary, a quarterly insurance premium, or a
  weekly loan installment, the same code expands it, nets one-off
  adjustments into the right occurrence exactly once, and folds the result
  into per-day buckets.

KEY CONCEPTS IN THIS FILE (types.go):
  - RecurrenceRule: one periodic obligation (tagged salary/generic variant)
  - Frequency:      how the rule steps through the calendar
  - Adjustment:     a one-off increase or decrease tied to an entity
  - Occurrence:     one concrete scheduled instance, with its period key
  - UpcomingItem:   a near-term due item merged from multiple sources

DESIGN PRINCIPLES:
  1. Determinism: every operation is a pure function of its inputs;
     "today" is always injected, never read from the clock.
  2. Precision: decimal.Decimal for all money, never float64.
  3. Totality: malformed data degrades (fail-closed frequency, empty
     sequences), it never raises.
  4. Idempotency: the period key guarantees an adjustment lands on at
     most one occurrence per calendar period.

SEE ALSO:
  - generator.go:   rule -> occurrence expansion
  - adjustments.go: one-shot netting per period
  - aggregate.go:   per-date buckets and totals
  - projector.go:   the facade the host calls
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// FREQUENCY - Calendar step size of a recurrence rule
// =============================================================================

type Frequency string

const (
	FreqWeekly    Frequency = "weekly"
	FreqBiweekly  Frequency = "biweekly"
	FreqMonthly   Frequency = "monthly"
	FreqQuarterly Frequency = "quarterly"
	FreqYearly    Frequency = "yearly"
)

// NormalizeFrequency maps arbitrary input to a supported frequency.
// Unknown values fail closed to monthly (ok=false so callers can log a
// data-quality warning); they never crash a projection.
func NormalizeFrequency(raw string) (Frequency, bool) {
	switch Frequency(raw) {
	case FreqWeekly, FreqBiweekly, FreqMonthly, FreqQuarterly, FreqYearly:
		return Frequency(raw), true
	default:
		return FreqMonthly, false
	}
}

// monthsPerStep returns the calendar-month stride for monthly-family
// frequencies, or 0 for day-stepped frequencies.
func (f Frequency) monthsPerStep() int {
	switch f {
	case FreqMonthly:
		return 1
	case FreqQuarterly:
		return 3
	case FreqYearly:
		return 12
	default:
		return 0
	}
}

// daysPerStep returns the day stride for weekly-family frequencies,
// or 0 for month-stepped frequencies.
func (f Frequency) daysPerStep() int {
	switch f {
	case FreqWeekly:
		return 7
	case FreqBiweekly:
		return 14
	default:
		return 0
	}
}

// =============================================================================
// RECURRENCE RULE - One periodic obligation
// =============================================================================

// RuleKind discriminates the two rule shapes that used to be duck-typed:
// a salary rule (anchored on a pay day-of-month) and a generic recurring
// payment (anchored on its first due date).
type RuleKind string

const (
	KindSalary  RuleKind = "salary"
	KindGeneric RuleKind = "generic"
)

// RecurrenceRule describes one periodic obligation. The engine owns no
// rule state: rules are values supplied fresh on every projection call.
type RecurrenceRule struct {
	ID       string
	Kind     RuleKind
	EntityID string

	// BaseAmount is the amount of each occurrence before adjustments.
	// Invariant: never negative.
	BaseAmount decimal.Decimal

	// Frequency must be one of the Freq* constants; use NormalizeFrequency
	// on untrusted input.
	Frequency Frequency

	// Anchor seeds the first candidate occurrence. For salary rules this is
	// the pay day placed in some month at or before the window; for generic
	// rules it is the obligation's start date.
	Anchor Date

	// AnchorDay is the intended day-of-month for monthly-family stepping.
	// Zero means "use Anchor's day". Keeping it separate from Anchor is what
	// lets a day-31 rule clamp through February and recover in March.
	AnchorDay int

	// Category is a free-form tag ("loan", "rent", ...) used for sub-totals.
	Category string

	// Active rules produce occurrences; inactive ones produce none.
	Active bool
}

// anchorDay returns the effective day-of-month used for clamped stepping.
func (r RecurrenceRule) anchorDay() int {
	if r.AnchorDay > 0 {
		return r.AnchorDay
	}
	return r.Anchor.Day()
}

// =============================================================================
// ADJUSTMENT - One-off delta applied to a single occurrence
// =============================================================================

type AdjustmentKind string

const (
	AdjustIncrease AdjustmentKind = "increase" // bonus, overtime, commission
	AdjustDecrease AdjustmentKind = "decrease" // salary advance
)

// Adjustment is a one-off delta tied to an entity and an effective date.
// Adjustments are created externally and are immutable here: the engine
// only ever reads them.
type Adjustment struct {
	EntityID      string
	Kind          AdjustmentKind
	Amount        decimal.Decimal // never negative; Kind carries the sign
	EffectiveDate Date
}

// =============================================================================
// OCCURRENCE - One concrete scheduled instance
// =============================================================================

// Occurrence is a transient value produced by the generator. PeriodKey
// identifies the calendar period the occurrence belongs to and is the
// idempotency key the adjustment ledger consumes.
type Occurrence struct {
	RuleID    string
	EntityID  string
	Date      Date
	PeriodKey string
}

// =============================================================================
// UPCOMING ITEMS - Near-term due list merged across sources
// =============================================================================

// UpcomingItem is one near-term due obligation for the dashboard list.
type UpcomingItem struct {
	ID      string
	Title   string
	Amount  decimal.Decimal
	DueDate Date
}

// ObligationSource contributes candidate upcoming items. Implementations
// live in the domain packages (salary paydays, recurring payments, ad-hoc
// debts); the selector namespaces their IDs so sources cannot collide.
type ObligationSource interface {
	// SourceID returns the namespace prefix for this source's item IDs.
	SourceID() string

	// Items returns the source's due items within [today, horizon],
	// pending/active ones only. Order does not matter; the selector sorts.
	Items(today, horizon Date) []UpcomingItem
}
