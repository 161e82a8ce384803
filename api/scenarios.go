/*
scenarios.go - Demo datasets for the dashboard

PURPOSE:
  Loadable sample data so the dashboard demonstrates every projection
  path without manual data entry: salaried employees with bonuses and
  advances, recurring household obligations with a credit subset, and
  pending debts for the upcoming list.
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/projection-engine/billing"
	"github.com/warp/projection-engine/engine"
	"github.com/warp/projection-engine/payroll"
	"github.com/warp/projection-engine/store"
)

// Scenario is a named demo dataset.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Build       func() store.Snapshot
}

// Scenarios returns the available demo datasets in a stable order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			ID:          "studio-payroll",
			Name:        "Studio Payroll",
			Description: "Three salaried employees with a bonus, overtime, and a salary advance.",
			Build:       buildStudioPayroll,
		},
		{
			ID:          "household",
			Name:        "Household Obligations",
			Description: "Rent, utilities, a car loan, a phone installment, and two pending debts.",
			Build:       buildHousehold,
		},
	}
}

// FindScenario looks a scenario up by ID.
func FindScenario(id string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// DefaultScenario seeds first-run databases.
func DefaultScenario() Scenario {
	return Scenarios()[0]
}

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func buildStudioPayroll() store.Snapshot {
	return store.Snapshot{
		Employees: []payroll.Employee{
			{ID: "emp-ada", Name: "Ada Moreno", MonthlySalary: amount("4200"), PaymentDay: 5, Active: true},
			{ID: "emp-bas", Name: "Bas Verhoeven", MonthlySalary: amount("3800"), PaymentDay: 5, Active: true},
			{ID: "emp-chi", Name: "Chiara Ferri", MonthlySalary: amount("5100"), PaymentDay: 28, Active: true},
		},
		Adjustments: []payroll.Adjustment{
			{ID: "adj-1", EmployeeID: "emp-ada", Type: payroll.AdjustBonus, Amount: amount("600"), EffectiveDate: engine.NewDate(2024, time.February, 2)},
			{ID: "adj-2", EmployeeID: "emp-ada", Type: payroll.AdjustAdvance, Amount: amount("250"), EffectiveDate: engine.NewDate(2024, time.February, 3)},
			{ID: "adj-3", EmployeeID: "emp-bas", Type: payroll.AdjustOvertime, Amount: amount("320"), EffectiveDate: engine.NewDate(2024, time.March, 1)},
		},
		Payments: []billing.RecurringPayment{
			{ID: "pay-rent", Name: "Studio rent", Amount: amount("2400"), Frequency: "monthly", StartDate: engine.NewDate(2023, time.September, 1), Category: "rent", Active: true},
			{ID: "pay-ins", Name: "Equipment insurance", Amount: amount("180"), Frequency: "quarterly", StartDate: engine.NewDate(2023, time.October, 15), Category: "insurance", Active: true},
		},
		Debts: []billing.Debt{
			{ID: "debt-print", Creditor: "PrintWorks", Amount: amount("780"), DueDate: engine.NewDate(2024, time.February, 20), Status: billing.DebtPending},
		},
	}
}

func buildHousehold() store.Snapshot {
	return store.Snapshot{
		Payments: []billing.RecurringPayment{
			{ID: "pay-rent", Name: "Rent", Amount: amount("1350"), Frequency: "monthly", StartDate: engine.NewDate(2023, time.June, 1), Category: "rent", Active: true},
			{ID: "pay-power", Name: "Electricity", Amount: amount("95"), Frequency: "monthly", StartDate: engine.NewDate(2023, time.June, 12), Category: "utilities", Active: true},
			{ID: "pay-car", Name: "Car loan", Amount: amount("410"), Frequency: "monthly", StartDate: engine.NewDate(2023, time.March, 31), Category: "loan", Active: true},
			{ID: "pay-phone", Name: "Phone installment", Amount: amount("55"), Frequency: "monthly", StartDate: engine.NewDate(2023, time.November, 10), Category: "installment", Active: true},
			{ID: "pay-gym", Name: "Gym", Amount: amount("35"), Frequency: "weekly", StartDate: engine.NewDate(2024, time.January, 8), Category: "subscription", Active: true},
			{ID: "pay-old", Name: "Cancelled magazine", Amount: amount("12"), Frequency: "monthly", StartDate: engine.NewDate(2022, time.January, 1), Category: "subscription", Active: false},
		},
		Debts: []billing.Debt{
			{ID: "debt-dentist", Creditor: "Dental clinic", Amount: amount("240"), DueDate: engine.NewDate(2024, time.February, 15), Status: billing.DebtPending},
			{ID: "debt-tax", Creditor: "Tax office", Amount: amount("1100"), DueDate: engine.NewDate(2024, time.April, 30), Status: billing.DebtPending},
			{ID: "debt-done", Creditor: "Bookshop", Amount: amount("60"), DueDate: engine.NewDate(2024, time.January, 9), Status: billing.DebtPaid},
		},
	}
}
