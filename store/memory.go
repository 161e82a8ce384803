/*
Package store holds the host-side collections the engine projects over.

PURPOSE:
  The engine consumes pre-loaded in-memory collections: employees,
  adjustments, recurring payments, debts. This package owns those
  collections and a monotonically increasing version counter. The version
  is part of every projection memo key, so replacing a collection
  invalidates cached projections without any explicit cache coordination.

The engine itself never touches persistence; the sqlite subpackage only
fills these collections on startup and persists replacements.
*/
package store

import (
	"sync"

	"github.com/warp/projection-engine/billing"
	"github.com/warp/projection-engine/payroll"
)

// Snapshot is one consistent view of every collection.
type Snapshot struct {
	Employees   []payroll.Employee
	Adjustments []payroll.Adjustment
	Payments    []billing.RecurringPayment
	Debts       []billing.Debt
}

// Memory is the versioned in-memory repository the dashboard reads from.
type Memory struct {
	mu      sync.RWMutex
	snap    Snapshot
	version uint64
}

func NewMemory() *Memory {
	return &Memory{version: 1}
}

// Replace swaps in a whole new snapshot and bumps the version.
func (m *Memory) Replace(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = copySnapshot(snap)
	m.version++
}

// Version returns the current collections version. It changes exactly
// when the data changes, which makes it a safe memoization key component.
func (m *Memory) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

func (m *Memory) Employees() []payroll.Employee {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]payroll.Employee(nil), m.snap.Employees...)
}

func (m *Memory) Adjustments() []payroll.Adjustment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]payroll.Adjustment(nil), m.snap.Adjustments...)
}

func (m *Memory) Payments() []billing.RecurringPayment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]billing.RecurringPayment(nil), m.snap.Payments...)
}

func (m *Memory) Debts() []billing.Debt {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]billing.Debt(nil), m.snap.Debts...)
}

func copySnapshot(snap Snapshot) Snapshot {
	return Snapshot{
		Employees:   append([]payroll.Employee(nil), snap.Employees...),
		Adjustments: append([]payroll.Adjustment(nil), snap.Adjustments...),
		Payments:    append([]billing.RecurringPayment(nil), snap.Payments...),
		Debts:       append([]billing.Debt(nil), snap.Debts...),
	}
}
