/*
Package sqlite persists the host-side collections between restarts.

PURPOSE:
  The engine projects over in-memory collections; this package is where
  those collections live on disk. On startup the whole database is loaded
  into a store.Snapshot, and replacing a snapshot (e.g. loading a demo
  scenario) rewrites it wholesale inside one transaction.

STORAGE CHOICES:
  - Amounts are TEXT holding decimal strings. Never floats: a projection
    engine that drifts by cents is worse than useless.
  - Dates are TEXT in ISO form (2006-01-02), matching bucket keys.
  - Schema is auto-migrated on New(). For production, use a versioned
    migration tool instead.

SEE ALSO:
  - store: the in-memory repository these snapshots feed
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/projection-engine/billing"
	"github.com/warp/projection-engine/engine"
	"github.com/warp/projection-engine/payroll"
	"github.com/warp/projection-engine/store"
)

// Store is the SQLite-backed snapshot store.
// Use ":memory:" as the path for tests.
type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		monthly_salary TEXT NOT NULL,
		payment_day INTEGER NOT NULL,
		active INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS adjustments (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		adj_type TEXT NOT NULL,
		amount TEXT NOT NULL,
		effective_date TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_adjustments_employee
		ON adjustments(employee_id, effective_date);

	CREATE TABLE IF NOT EXISTS recurring_payments (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		amount TEXT NOT NULL,
		frequency TEXT NOT NULL,
		start_date TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS debts (
		id TEXT PRIMARY KEY,
		creditor TEXT NOT NULL,
		amount TEXT NOT NULL,
		due_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// LOAD
// =============================================================================

// LoadSnapshot reads every collection into one snapshot.
func (s *Store) LoadSnapshot(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot

	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return snap, fmt.Errorf("load employees: %w", err)
	}
	adjustments, err := s.loadAdjustments(ctx)
	if err != nil {
		return snap, fmt.Errorf("load adjustments: %w", err)
	}
	payments, err := s.loadPayments(ctx)
	if err != nil {
		return snap, fmt.Errorf("load recurring payments: %w", err)
	}
	debts, err := s.loadDebts(ctx)
	if err != nil {
		return snap, fmt.Errorf("load debts: %w", err)
	}

	snap.Employees = employees
	snap.Adjustments = adjustments
	snap.Payments = payments
	snap.Debts = debts
	return snap, nil
}

// IsEmpty reports whether no collection has any rows, so the host can
// decide to seed a demo scenario on first run.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM employees)
		     + (SELECT COUNT(*) FROM adjustments)
		     + (SELECT COUNT(*) FROM recurring_payments)
		     + (SELECT COUNT(*) FROM debts)`).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *Store) loadEmployees(ctx context.Context) ([]payroll.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, monthly_salary, payment_day, active FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []payroll.Employee
	for rows.Next() {
		var e payroll.Employee
		var salary string
		var active int
		if err := rows.Scan(&e.ID, &e.Name, &salary, &e.PaymentDay, &active); err != nil {
			return nil, err
		}
		if e.MonthlySalary, err = decimal.NewFromString(salary); err != nil {
			return nil, fmt.Errorf("employee %s: bad salary %q: %w", e.ID, salary, err)
		}
		e.Active = active != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) loadAdjustments(ctx context.Context) ([]payroll.Adjustment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, adj_type, amount, effective_date FROM adjustments ORDER BY effective_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []payroll.Adjustment
	for rows.Next() {
		var a payroll.Adjustment
		var amount, effective, adjType string
		if err := rows.Scan(&a.ID, &a.EmployeeID, &adjType, &amount, &effective); err != nil {
			return nil, err
		}
		a.Type = payroll.AdjustmentType(adjType)
		if a.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("adjustment %s: bad amount %q: %w", a.ID, amount, err)
		}
		date, ok := engine.ParseDate(effective)
		if !ok {
			return nil, fmt.Errorf("adjustment %s: bad effective date %q", a.ID, effective)
		}
		a.EffectiveDate = date
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) loadPayments(ctx context.Context) ([]billing.RecurringPayment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, amount, frequency, start_date, category, active FROM recurring_payments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []billing.RecurringPayment
	for rows.Next() {
		var p billing.RecurringPayment
		var amount, start string
		var active int
		if err := rows.Scan(&p.ID, &p.Name, &amount, &p.Frequency, &start, &p.Category, &active); err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("payment %s: bad amount %q: %w", p.ID, amount, err)
		}
		date, ok := engine.ParseDate(start)
		if !ok {
			return nil, fmt.Errorf("payment %s: bad start date %q", p.ID, start)
		}
		p.StartDate = date
		p.Active = active != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) loadDebts(ctx context.Context) ([]billing.Debt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, creditor, amount, due_date, status FROM debts ORDER BY due_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []billing.Debt
	for rows.Next() {
		var d billing.Debt
		var amount, due, status string
		if err := rows.Scan(&d.ID, &d.Creditor, &amount, &due, &status); err != nil {
			return nil, err
		}
		if d.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("debt %s: bad amount %q: %w", d.ID, amount, err)
		}
		date, ok := engine.ParseDate(due)
		if !ok {
			return nil, fmt.Errorf("debt %s: bad due date %q", d.ID, due)
		}
		d.DueDate = date
		d.Status = billing.DebtStatus(status)
		out = append(out, d)
	}
	return out, rows.Err()
}

// =============================================================================
// SAVE
// =============================================================================

// SaveSnapshot replaces the whole database content atomically.
func (s *Store) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"employees", "adjustments", "recurring_payments", "debts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, e := range snap.Employees {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO employees (id, name, monthly_salary, payment_day, active) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.MonthlySalary.String(), e.PaymentDay, boolToInt(e.Active)); err != nil {
			return err
		}
	}
	for _, a := range snap.Adjustments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO adjustments (id, employee_id, adj_type, amount, effective_date) VALUES (?, ?, ?, ?, ?)`,
			a.ID, a.EmployeeID, string(a.Type), a.Amount.String(), a.EffectiveDate.ISO()); err != nil {
			return err
		}
	}
	for _, p := range snap.Payments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recurring_payments (id, name, amount, frequency, start_date, category, active) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Amount.String(), p.Frequency, p.StartDate.ISO(), p.Category, boolToInt(p.Active)); err != nil {
			return err
		}
	}
	for _, d := range snap.Debts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO debts (id, creditor, amount, due_date, status) VALUES (?, ?, ?, ?, ?)`,
			d.ID, d.Creditor, d.Amount.String(), d.DueDate.ISO(), string(d.Status)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
