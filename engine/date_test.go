package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/projection-engine/engine"
)

func TestAddMonths_PreservesAnchorDayThroughShortMonths(t *testing.T) {
	// A day-31 obligation clamps to the end of February and recovers to
	// the 31st in March because the anchor day travels with the rule.
	jan31 := engine.NewDate(2024, time.January, 31)

	feb := jan31.AddMonths(1, 31)
	assert.Equal(t, "2024-02-29", feb.ISO(), "2024 is a leap year")

	mar := feb.AddMonths(1, 31)
	assert.Equal(t, "2024-03-31", mar.ISO(), "anchor day must recover after clamping")
}

func TestAddMonths_NonLeapFebruary(t *testing.T) {
	jan31 := engine.NewDate(2023, time.January, 31)
	assert.Equal(t, "2023-02-28", jan31.AddMonths(1, 31).ISO())
}

func TestAddMonths_YearRollover(t *testing.T) {
	nov15 := engine.NewDate(2024, time.November, 15)
	assert.Equal(t, "2025-02-15", nov15.AddMonths(3, 15).ISO())

	dec31 := engine.NewDate(2024, time.December, 31)
	assert.Equal(t, "2025-12-31", dec31.AddMonths(12, 31).ISO())
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, engine.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, engine.DaysInMonth(2023, time.February))
	assert.Equal(t, 31, engine.DaysInMonth(2024, time.January))
	assert.Equal(t, 30, engine.DaysInMonth(2024, time.April))
}

func TestParseDate(t *testing.T) {
	d, ok := engine.ParseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", d.ISO())

	_, ok = engine.ParseDate("not-a-date")
	assert.False(t, ok)

	_, ok = engine.ParseDate("2024-02-30")
	assert.False(t, ok)
}

func TestDaysBetween(t *testing.T) {
	a := engine.NewDate(2024, time.January, 1)
	b := engine.NewDate(2024, time.January, 31)
	assert.Equal(t, 30, engine.DaysBetween(a, b))
	assert.Equal(t, -30, engine.DaysBetween(b, a))
}

func TestDateComparisons(t *testing.T) {
	a := engine.NewDate(2024, time.March, 10)
	b := engine.NewDate(2024, time.March, 11)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.BeforeOrEqual(a))
	assert.True(t, a.AfterOrEqual(a))
	assert.False(t, a.Equal(b))
}
