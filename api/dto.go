/*
dto.go - JSON shapes for the dashboard API

PURPOSE:
  Decouples the engine's internal types from the wire contract. Amounts
  serialize as decimal strings ("12500.00"), never floats: formatting for
  display is the frontend's job, losing cents is nobody's job.
*/
package api

import (
	"github.com/warp/projection-engine/billing"
	"github.com/warp/projection-engine/engine"
	"github.com/warp/projection-engine/payroll"
)

// RangeDTO describes the resolved projection window.
type RangeDTO struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// SummaryDTO backs the dashboard's summary cards.
type SummaryDTO struct {
	Range          RangeDTO `json:"range"`
	SalaryTotal    string   `json:"salary_total"`
	RecurringTotal string   `json:"recurring_total"`
	CreditTotal    string   `json:"credit_total"`
	GrandTotal     string   `json:"grand_total"`
}

// ChartPointDTO is one per-day bucket in the chart series.
type ChartPointDTO struct {
	Date      string `json:"date"`
	Salary    string `json:"salary"`
	Recurring string `json:"recurring"`
	Total     string `json:"total"`
}

// ChartDTO is the full chart payload.
type ChartDTO struct {
	Range  RangeDTO        `json:"range"`
	Points []ChartPointDTO `json:"points"`
}

// UpcomingItemDTO is one entry in the near-term due list.
type UpcomingItemDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Amount  string `json:"amount"`
	DueDate string `json:"due_date"`
}

// EmployeeDTO represents an employee in list responses.
type EmployeeDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MonthlySalary string `json:"monthly_salary"`
	PaymentDay    int    `json:"payment_day"`
	Active        bool   `json:"active"`
}

// AdjustmentDTO represents one HR adjustment record.
type AdjustmentDTO struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	EffectiveDate string `json:"effective_date"`
}

// PaymentDTO represents a recurring payment in list responses.
type PaymentDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date"`
	Category  string `json:"category"`
	Active    bool   `json:"active"`
}

// DebtDTO represents an ad-hoc debt.
type DebtDTO struct {
	ID       string `json:"id"`
	Creditor string `json:"creditor"`
	Amount   string `json:"amount"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
}

// ScenarioDTO describes a loadable demo dataset.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a demo dataset to load.
type LoadScenarioRequest struct {
	ID string `json:"id"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toRangeDTO(w engine.Window) RangeDTO {
	return RangeDTO{Label: w.Label, Start: w.Start.ISO(), End: w.End.ISO()}
}

func toUpcomingDTOs(items []engine.UpcomingItem) []UpcomingItemDTO {
	dtos := make([]UpcomingItemDTO, len(items))
	for i, item := range items {
		dtos[i] = UpcomingItemDTO{
			ID:      item.ID,
			Title:   item.Title,
			Amount:  item.Amount.String(),
			DueDate: item.DueDate.ISO(),
		}
	}
	return dtos
}

func toEmployeeDTOs(employees []payroll.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = EmployeeDTO{
			ID:            e.ID,
			Name:          e.Name,
			MonthlySalary: e.MonthlySalary.String(),
			PaymentDay:    e.PaymentDay,
			Active:        e.Active,
		}
	}
	return dtos
}

func toAdjustmentDTOs(records []payroll.Adjustment) []AdjustmentDTO {
	dtos := make([]AdjustmentDTO, len(records))
	for i, a := range records {
		dtos[i] = AdjustmentDTO{
			ID:            a.ID,
			EmployeeID:    a.EmployeeID,
			Type:          string(a.Type),
			Amount:        a.Amount.String(),
			EffectiveDate: a.EffectiveDate.ISO(),
		}
	}
	return dtos
}

func toPaymentDTOs(payments []billing.RecurringPayment) []PaymentDTO {
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = PaymentDTO{
			ID:        p.ID,
			Name:      p.Name,
			Amount:    p.Amount.String(),
			Frequency: p.Frequency,
			StartDate: p.StartDate.ISO(),
			Category:  p.Category,
			Active:    p.Active,
		}
	}
	return dtos
}

func toDebtDTOs(debts []billing.Debt) []DebtDTO {
	dtos := make([]DebtDTO, len(debts))
	for i, d := range debts {
		dtos[i] = DebtDTO{
			ID:       d.ID,
			Creditor: d.Creditor,
			Amount:   d.Amount.String(),
			DueDate:  d.DueDate.ISO(),
			Status:   string(d.Status),
		}
	}
	return dtos
}
