/*
Package payroll maps the salary domain onto the projection engine.

PURPOSE:
  Employees are paid on a monthly cycle anchored on a pay day-of-month.
  One-off HR adjustments (bonus, overtime, commission, advance) must land
  on exactly one salary occurrence. This package converts both into the
  engine's rule/adjustment shapes and exposes the salary projection call.

ADJUSTMENT TAXONOMY:
  bonus, overtime, commission -> increase
  advance                     -> decrease

  An advance taken after the pay date does not reduce that payment; the
  engine's netting enforces that, this package only classifies.

SEE ALSO:
  - engine/projector.go: ProjectSalaries
  - billing:             the generic recurring-payment counterpart
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/projection-engine/engine"
)

// =============================================================================
// EMPLOYEE - Salary obligation on a monthly pay cycle
// =============================================================================

type Employee struct {
	ID            string
	Name          string
	MonthlySalary decimal.Decimal
	PaymentDay    int // day-of-month, clamped by the engine in short months
	Active        bool
}

// SalaryRule converts an employee into a monthly salary rule seeded at or
// before the window start. The engine advances the candidate forward, so
// seeding in the window's start month is always early enough.
func SalaryRule(e Employee, window engine.Window) engine.RecurrenceRule {
	day := e.PaymentDay
	if day < 1 {
		day = 1
	}
	anchorDay := day
	if last := engine.DaysInMonth(window.Start.Year(), window.Start.Month()); day > last {
		day = last
	}
	return engine.RecurrenceRule{
		ID:         "salary-" + e.ID,
		Kind:       engine.KindSalary,
		EntityID:   e.ID,
		BaseAmount: e.MonthlySalary,
		Frequency:  engine.FreqMonthly,
		Anchor:     engine.NewDate(window.Start.Year(), window.Start.Month(), day),
		AnchorDay:  anchorDay,
		Category:   "salary",
		Active:     e.Active,
	}
}

// =============================================================================
// ADJUSTMENTS - One-off HR deltas
// =============================================================================

type AdjustmentType string

const (
	AdjustBonus      AdjustmentType = "bonus"
	AdjustOvertime   AdjustmentType = "overtime"
	AdjustCommission AdjustmentType = "commission"
	AdjustAdvance    AdjustmentType = "advance"
)

// Adjustment is one HR adjustment record as loaded from the host.
type Adjustment struct {
	ID            string
	EmployeeID    string
	Type          AdjustmentType
	Amount        decimal.Decimal
	EffectiveDate engine.Date
}

// Kind classifies the adjustment for netting. Advances reduce a payment;
// everything else increases it. Unknown types are treated as increases so
// a typo in HR data inflates a projection visibly instead of silently
// shrinking a paycheck.
func (a Adjustment) Kind() engine.AdjustmentKind {
	if a.Type == AdjustAdvance {
		return engine.AdjustDecrease
	}
	return engine.AdjustIncrease
}

// EngineAdjustments converts HR records to the engine's adjustment shape.
func EngineAdjustments(records []Adjustment) []engine.Adjustment {
	out := make([]engine.Adjustment, 0, len(records))
	for _, rec := range records {
		out = append(out, engine.Adjustment{
			EntityID:      rec.EmployeeID,
			Kind:          rec.Kind(),
			Amount:        rec.Amount,
			EffectiveDate: rec.EffectiveDate,
		})
	}
	return out
}

// =============================================================================
// SALARY PROJECTION
// =============================================================================

// Service runs salary projections through a shared projector.
type Service struct {
	Projector *engine.Projector
}

// Project expands every employee's pay cycle over the window, nets the
// adjustments, and returns the per-day salary buckets and window total.
func (s *Service) Project(employees []Employee, adjustments []Adjustment, window engine.Window) engine.ProjectionResult {
	rules := make([]engine.RecurrenceRule, 0, len(employees))
	for _, e := range employees {
		rules = append(rules, SalaryRule(e, window))
	}
	return s.Projector.ProjectSalaries(rules, EngineAdjustments(adjustments), window)
}

// =============================================================================
// UPCOMING SOURCE - Next payday per employee
// =============================================================================

// Source exposes upcoming paydays as an engine.ObligationSource.
type Source struct {
	Employees []Employee
}

func (s *Source) SourceID() string { return "salary" }

// Items returns each active employee's next payday within the horizon.
func (s *Source) Items(today, horizon engine.Date) []engine.UpcomingItem {
	window := engine.Window{Start: today, End: horizon}
	var items []engine.UpcomingItem
	for _, e := range s.Employees {
		occs := engine.Generate(SalaryRule(e, window), window)
		if len(occs) == 0 {
			continue
		}
		items = append(items, engine.UpcomingItem{
			ID:      e.ID,
			Title:   "Salary: " + e.Name,
			Amount:  e.MonthlySalary,
			DueDate: occs[0].Date,
		})
	}
	return items
}
