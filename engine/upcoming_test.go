package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/projection-engine/engine"
)

// stubSource is a canned ObligationSource for selector tests.
type stubSource struct {
	id    string
	items []engine.UpcomingItem
}

func (s stubSource) SourceID() string { return s.id }

func (s stubSource) Items(today, horizon engine.Date) []engine.UpcomingItem {
	return s.items
}

func item(id string, amount int64, y int, m time.Month, d int) engine.UpcomingItem {
	return engine.UpcomingItem{
		ID:      id,
		Title:   "item " + id,
		Amount:  decimal.NewFromInt(amount),
		DueDate: engine.NewDate(y, m, d),
	}
}

func TestSelectUpcoming_MergesSortsAndNamespaces(t *testing.T) {
	today := engine.NewDate(2024, time.March, 1)

	rent := stubSource{id: "recurring", items: []engine.UpcomingItem{
		item("rent", 1200, 2024, time.March, 5),
	}}
	payday := stubSource{id: "salary", items: []engine.UpcomingItem{
		item("emp-1", 5000, 2024, time.March, 3),
	}}
	debt := stubSource{id: "debt", items: []engine.UpcomingItem{
		item("d1", 250, 2024, time.March, 10),
	}}

	got := engine.SelectUpcoming([]engine.ObligationSource{rent, payday, debt}, 30, 10, today)
	require.Len(t, got, 3)

	assert.Equal(t, "salary:emp-1", got[0].ID)
	assert.Equal(t, "recurring:rent", got[1].ID)
	assert.Equal(t, "debt:d1", got[2].ID)
}

func TestSelectUpcoming_EnforcesHorizonOverSourceOutput(t *testing.T) {
	today := engine.NewDate(2024, time.March, 1)

	// A misbehaving source returning items outside [today, horizon].
	sloppy := stubSource{id: "s", items: []engine.UpcomingItem{
		item("past", 1, 2024, time.February, 28),
		item("in", 2, 2024, time.March, 7),
		item("far", 3, 2024, time.May, 1),
	}}

	got := engine.SelectUpcoming([]engine.ObligationSource{sloppy}, 14, 10, today)
	require.Len(t, got, 1)
	assert.Equal(t, "s:in", got[0].ID)
}

func TestSelectUpcoming_CapsAtLimit(t *testing.T) {
	today := engine.NewDate(2024, time.March, 1)

	src := stubSource{id: "s", items: []engine.UpcomingItem{
		item("a", 1, 2024, time.March, 4),
		item("b", 1, 2024, time.March, 2),
		item("c", 1, 2024, time.March, 3),
	}}

	got := engine.SelectUpcoming([]engine.ObligationSource{src}, 30, 2, today)
	require.Len(t, got, 2)
	assert.Equal(t, "s:b", got[0].ID)
	assert.Equal(t, "s:c", got[1].ID)
}

func TestSelectUpcoming_SameDayTiebreakByID(t *testing.T) {
	today := engine.NewDate(2024, time.March, 1)

	a := stubSource{id: "zeta", items: []engine.UpcomingItem{item("x", 1, 2024, time.March, 5)}}
	b := stubSource{id: "alpha", items: []engine.UpcomingItem{item("x", 1, 2024, time.March, 5)}}

	got := engine.SelectUpcoming([]engine.ObligationSource{a, b}, 30, 10, today)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha:x", got[0].ID, "equal due dates order by namespaced ID")
	assert.Equal(t, "zeta:x", got[1].ID)
}

func TestSelectUpcoming_DegenerateInputs(t *testing.T) {
	today := engine.NewDate(2024, time.March, 1)
	src := stubSource{id: "s", items: []engine.UpcomingItem{item("a", 1, 2024, time.March, 2)}}
	sources := []engine.ObligationSource{src, nil}

	assert.Empty(t, engine.SelectUpcoming(nil, 30, 5, today))
	assert.Empty(t, engine.SelectUpcoming(sources, -1, 5, today))
	assert.Empty(t, engine.SelectUpcoming(sources, 30, 0, today))

	// Zero horizon still admits items due today.
	src.items[0].DueDate = today
	got := engine.SelectUpcoming([]engine.ObligationSource{src}, 0, 5, today)
	assert.Len(t, got, 1)
}
