package store_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/projection-engine/billing"
	"github.com/warp/projection-engine/engine"
	"github.com/warp/projection-engine/payroll"
	"github.com/warp/projection-engine/store"
)

func sampleSnapshot() store.Snapshot {
	return store.Snapshot{
		Employees: []payroll.Employee{
			{ID: "e1", Name: "Ada", MonthlySalary: decimal.NewFromInt(5000), PaymentDay: 5, Active: true},
		},
		Payments: []billing.RecurringPayment{
			{ID: "rent", Name: "Rent", Amount: decimal.NewFromInt(1200), Frequency: "monthly",
				StartDate: engine.NewDate(2024, time.January, 1), Category: "housing", Active: true},
		},
	}
}

func TestMemory_ReplaceBumpsVersion(t *testing.T) {
	m := store.NewMemory()
	v0 := m.Version()

	m.Replace(sampleSnapshot())
	assert.Equal(t, v0+1, m.Version())

	m.Replace(sampleSnapshot())
	assert.Equal(t, v0+2, m.Version(), "every replace invalidates memoized projections")
}

func TestMemory_GettersReturnCopies(t *testing.T) {
	m := store.NewMemory()
	m.Replace(sampleSnapshot())

	employees := m.Employees()
	require.Len(t, employees, 1)
	employees[0].Name = "mutated"

	assert.Equal(t, "Ada", m.Employees()[0].Name,
		"a caller's mutation must not leak into the repository")
}

func TestMemory_ReplaceDetachesFromCallerSlice(t *testing.T) {
	m := store.NewMemory()
	snap := sampleSnapshot()
	m.Replace(snap)

	snap.Employees[0].Name = "mutated after replace"
	assert.Equal(t, "Ada", m.Employees()[0].Name)
}

func TestMemory_EmptyCollections(t *testing.T) {
	m := store.NewMemory()

	assert.Empty(t, m.Employees())
	assert.Empty(t, m.Adjustments())
	assert.Empty(t, m.Payments())
	assert.Empty(t, m.Debts())
}
