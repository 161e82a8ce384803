package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/projection-engine/engine"
)

func monthlyRule(entityID string, anchor engine.Date) engine.RecurrenceRule {
	return engine.RecurrenceRule{
		ID:         "rule-" + entityID,
		Kind:       engine.KindGeneric,
		EntityID:   entityID,
		BaseAmount: decimal.NewFromInt(100),
		Frequency:  engine.FreqMonthly,
		Anchor:     anchor,
		AnchorDay:  anchor.Day(),
		Active:     true,
	}
}

func window(startY int, startM time.Month, startD, endY int, endM time.Month, endD int) engine.Window {
	return engine.Window{
		Start: engine.NewDate(startY, startM, startD),
		End:   engine.NewDate(endY, endM, endD),
	}
}

func isoDates(occs []engine.Occurrence) []string {
	out := make([]string, len(occs))
	for i, o := range occs {
		out[i] = o.Date.ISO()
	}
	return out
}

func TestGenerate_MonthlyInsideWindow(t *testing.T) {
	rule := monthlyRule("e1", engine.NewDate(2024, time.January, 10))
	occs := engine.Generate(rule, window(2024, time.January, 1, 2024, time.April, 1))

	assert.Equal(t, []string{"2024-01-10", "2024-02-10", "2024-03-10"}, isoDates(occs))
}

func TestGenerate_AnchorBeforeWindowAdvancesIntoIt(t *testing.T) {
	// Anchor long before the window: the seed loop walks forward and the
	// first emission is the first occurrence at or after the start.
	rule := monthlyRule("e1", engine.NewDate(2022, time.May, 20))
	occs := engine.Generate(rule, window(2024, time.March, 1, 2024, time.April, 30))

	assert.Equal(t, []string{"2024-03-20", "2024-04-20"}, isoDates(occs))
}

func TestGenerate_WeeklyAndBiweekly(t *testing.T) {
	weekly := monthlyRule("e1", engine.NewDate(2024, time.January, 1))
	weekly.Frequency = engine.FreqWeekly
	occs := engine.Generate(weekly, window(2024, time.January, 1, 2024, time.January, 22))
	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}, isoDates(occs))

	biweekly := monthlyRule("e1", engine.NewDate(2024, time.January, 1))
	biweekly.Frequency = engine.FreqBiweekly
	occs = engine.Generate(biweekly, window(2024, time.January, 1, 2024, time.February, 1))
	assert.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-01-29"}, isoDates(occs))
}

func TestGenerate_QuarterlyAndYearly(t *testing.T) {
	quarterly := monthlyRule("e1", engine.NewDate(2024, time.January, 15))
	quarterly.Frequency = engine.FreqQuarterly
	occs := engine.Generate(quarterly, window(2024, time.January, 1, 2024, time.December, 31))
	assert.Equal(t, []string{"2024-01-15", "2024-04-15", "2024-07-15", "2024-10-15"}, isoDates(occs))

	yearly := monthlyRule("e1", engine.NewDate(2023, time.June, 1))
	yearly.Frequency = engine.FreqYearly
	occs = engine.Generate(yearly, window(2024, time.January, 1, 2026, time.December, 31))
	assert.Equal(t, []string{"2024-06-01", "2025-06-01", "2026-06-01"}, isoDates(occs))
}

func TestGenerate_Day31ClampsAndRecovers(t *testing.T) {
	rule := monthlyRule("e1", engine.NewDate(2024, time.January, 31))
	occs := engine.Generate(rule, window(2024, time.January, 1, 2024, time.April, 30))

	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"}, isoDates(occs))
}

func TestGenerate_InactiveRuleYieldsNothing(t *testing.T) {
	rule := monthlyRule("e1", engine.NewDate(2024, time.January, 10))
	rule.Active = false

	assert.Empty(t, engine.Generate(rule, window(2024, time.January, 1, 2024, time.December, 31)))
}

func TestGenerate_EmptyWindowYieldsNothing(t *testing.T) {
	rule := monthlyRule("e1", engine.NewDate(2024, time.January, 10))

	assert.Empty(t, engine.Generate(rule, window(2024, time.March, 1, 2024, time.January, 1)))
	assert.Empty(t, engine.Generate(rule, engine.Window{}))
}

func TestGenerate_UnknownFrequencyFailsClosedToMonthly(t *testing.T) {
	rule := monthlyRule("e1", engine.NewDate(2024, time.January, 10))
	rule.Frequency = engine.Frequency("fortnightly-ish")

	occs := engine.Generate(rule, window(2024, time.January, 1, 2024, time.March, 31))
	assert.Equal(t, []string{"2024-01-10", "2024-02-10", "2024-03-10"}, isoDates(occs))
}

func TestGenerate_MonotonicAndContained(t *testing.T) {
	// Properties: successive dates strictly increase and every date lies
	// inside the window, across all frequencies.
	w := window(2024, time.February, 1, 2024, time.November, 30)

	for _, freq := range []engine.Frequency{
		engine.FreqWeekly, engine.FreqBiweekly, engine.FreqMonthly,
		engine.FreqQuarterly, engine.FreqYearly,
	} {
		rule := monthlyRule("e1", engine.NewDate(2023, time.December, 31))
		rule.Frequency = freq

		occs := engine.Generate(rule, w)
		for i, occ := range occs {
			assert.True(t, w.Contains(occ.Date), "%s: %s escapes the window", freq, occ.Date)
			if i > 0 {
				assert.True(t, occs[i-1].Date.Before(occ.Date),
					"%s: dates must strictly increase", freq)
			}
		}
	}
}

func TestGenerate_Restartable(t *testing.T) {
	rule := monthlyRule("e1", engine.NewDate(2024, time.January, 5))
	w := window(2024, time.January, 1, 2024, time.June, 30)

	first := engine.Generate(rule, w)
	second := engine.Generate(rule, w)
	require.Equal(t, first, second, "same inputs must yield the same sequence")
}

func TestPeriodKey_Shapes(t *testing.T) {
	d := engine.NewDate(2024, time.February, 5)

	assert.Equal(t, "e1|2024-02", engine.PeriodKey("e1", d, engine.FreqMonthly))
	assert.Equal(t, "e1|2024-02", engine.PeriodKey("e1", d, engine.FreqQuarterly))
	assert.Equal(t, "e1|2024-02", engine.PeriodKey("e1", d, engine.FreqYearly))
	assert.Equal(t, "e1|2024-02-05", engine.PeriodKey("e1", d, engine.FreqWeekly))
	assert.Equal(t, "e1|2024-02-05", engine.PeriodKey("e1", d, engine.FreqBiweekly))
}
