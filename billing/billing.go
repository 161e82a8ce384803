/*
Package billing maps generic recurring payments and ad-hoc debts onto the
projection engine.

PURPOSE:
  Recurring payments (loans, rent, utilities, subscriptions) repeat on any
  of the supported frequencies, anchored on their first due date. Debts
  are one-off obligations with a due date and a pending/paid status.
  Both feed the dashboard: payments through projection, payments and
  debts through the upcoming list.

CATEGORIES:
  Free-form tags. "loan" and "installment" form the credit subset the
  dashboard breaks out separately; the subset total is produced by
  filtered re-projection, never by subtraction.
*/
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/warp/projection-engine/engine"
)

// =============================================================================
// RECURRING PAYMENT
// =============================================================================

type RecurringPayment struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Frequency string // normalized by the engine; unknown values fall back to monthly
	StartDate engine.Date
	Category  string // "loan", "installment", "rent", "utilities", ...
	Active    bool
}

// Rule converts a payment into a generic recurrence rule anchored on its
// first due date.
func (rp RecurringPayment) Rule() engine.RecurrenceRule {
	return engine.RecurrenceRule{
		ID:         rp.ID,
		Kind:       engine.KindGeneric,
		EntityID:   rp.ID,
		BaseAmount: rp.Amount,
		Frequency:  engine.Frequency(rp.Frequency),
		Anchor:     rp.StartDate,
		AnchorDay:  rp.StartDate.Day(),
		Category:   rp.Category,
		Active:     rp.Active,
	}
}

// IsCredit reports whether a category belongs to the credit/loan subset.
func IsCredit(category string) bool {
	return category == "loan" || category == "installment"
}

// =============================================================================
// DEBTS - Ad-hoc one-off obligations
// =============================================================================

type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
)

type Debt struct {
	ID       string
	Creditor string
	Amount   decimal.Decimal
	DueDate  engine.Date
	Status   DebtStatus
}

// =============================================================================
// PROJECTION
// =============================================================================

// Service runs recurring-payment projections through a shared projector.
type Service struct {
	Projector *engine.Projector
}

func (s *Service) rules(payments []RecurringPayment) []engine.RecurrenceRule {
	rules := make([]engine.RecurrenceRule, 0, len(payments))
	for _, p := range payments {
		rules = append(rules, p.Rule())
	}
	return rules
}

// Project expands all recurring payments over the window.
func (s *Service) Project(payments []RecurringPayment, window engine.Window) engine.ProjectionResult {
	return s.Projector.ProjectRecurring(s.rules(payments), window)
}

// ProjectCredit expands only the credit/loan subset over the window.
func (s *Service) ProjectCredit(payments []RecurringPayment, window engine.Window) engine.ProjectionResult {
	return s.Projector.ProjectRecurringFiltered(s.rules(payments), window, func(r engine.RecurrenceRule) bool {
		return IsCredit(r.Category)
	})
}

// =============================================================================
// UPCOMING SOURCES
// =============================================================================

// PaymentSource exposes each active payment's next due date.
type PaymentSource struct {
	Payments []RecurringPayment
}

func (s *PaymentSource) SourceID() string { return "recurring" }

func (s *PaymentSource) Items(today, horizon engine.Date) []engine.UpcomingItem {
	window := engine.Window{Start: today, End: horizon}
	var items []engine.UpcomingItem
	for _, p := range s.Payments {
		occs := engine.Generate(p.Rule(), window)
		if len(occs) == 0 {
			continue
		}
		items = append(items, engine.UpcomingItem{
			ID:      p.ID,
			Title:   p.Name,
			Amount:  p.Amount,
			DueDate: occs[0].Date,
		})
	}
	return items
}

// DebtSource exposes pending debts due within the horizon.
type DebtSource struct {
	Debts []Debt
}

func (s *DebtSource) SourceID() string { return "debt" }

func (s *DebtSource) Items(today, horizon engine.Date) []engine.UpcomingItem {
	var items []engine.UpcomingItem
	for _, d := range s.Debts {
		if d.Status != DebtPending {
			continue
		}
		if d.DueDate.Before(today) || d.DueDate.After(horizon) {
			continue
		}
		items = append(items, engine.UpcomingItem{
			ID:      d.ID,
			Title:   "Debt: " + d.Creditor,
			Amount:  d.Amount,
			DueDate: d.DueDate,
		})
	}
	return items
}
