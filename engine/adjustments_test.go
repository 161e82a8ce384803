package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/projection-engine/engine"
)

func adj(entityID string, kind engine.AdjustmentKind, amount int64, y int, m time.Month, d int) engine.Adjustment {
	return engine.Adjustment{
		EntityID:      entityID,
		Kind:          kind,
		Amount:        decimal.NewFromInt(amount),
		EffectiveDate: engine.NewDate(y, m, d),
	}
}

func TestNetFor_BonusAndAdvanceNetAgainstOnePayday(t *testing.T) {
	payday := engine.NewDate(2024, time.February, 5)
	key := engine.PeriodKey("emp-1", payday, engine.FreqMonthly)

	adjustments := []engine.Adjustment{
		adj("emp-1", engine.AdjustIncrease, 2000, 2024, time.February, 10),
		adj("emp-1", engine.AdjustDecrease, 1000, 2024, time.February, 1),
	}

	consumed := engine.NewConsumedPeriods()
	net := engine.NetFor("emp-1", key, payday, adjustments, consumed)

	// Bonus counts anywhere in the month; the advance was taken before the
	// payday so it reduces this payment.
	assert.True(t, net.Equal(decimal.NewFromInt(1000)), "net = 2000 - 1000, got %s", net)

	final := engine.FinalAmount(decimal.NewFromInt(10000), net)
	assert.True(t, final.Equal(decimal.NewFromInt(11000)))
}

func TestNetFor_ConsumedPeriodYieldsZero(t *testing.T) {
	payday := engine.NewDate(2024, time.February, 5)
	key := engine.PeriodKey("emp-1", payday, engine.FreqMonthly)

	adjustments := []engine.Adjustment{
		adj("emp-1", engine.AdjustIncrease, 500, 2024, time.February, 3),
	}

	consumed := engine.NewConsumedPeriods()
	first := engine.NetFor("emp-1", key, payday, adjustments, consumed)
	second := engine.NetFor("emp-1", key, payday, adjustments, consumed)

	assert.True(t, first.Equal(decimal.NewFromInt(500)))
	assert.True(t, second.IsZero(), "a consumed period must contribute nothing")
	assert.True(t, consumed.Has(key))
}

func TestNetFor_AdvanceAfterPaydayDoesNotReduce(t *testing.T) {
	payday := engine.NewDate(2024, time.March, 5)
	key := engine.PeriodKey("emp-1", payday, engine.FreqMonthly)

	adjustments := []engine.Adjustment{
		// Taken on the 20th, after the payday on the 5th: it belongs to a
		// later settlement, not this one.
		adj("emp-1", engine.AdjustDecrease, 700, 2024, time.March, 20),
	}

	net := engine.NetFor("emp-1", key, payday, adjustments, engine.NewConsumedPeriods())
	assert.True(t, net.IsZero())
}

func TestNetFor_IncreaseAfterPaydayStillCounts(t *testing.T) {
	payday := engine.NewDate(2024, time.March, 5)
	key := engine.PeriodKey("emp-1", payday, engine.FreqMonthly)

	adjustments := []engine.Adjustment{
		adj("emp-1", engine.AdjustIncrease, 300, 2024, time.March, 25),
	}

	net := engine.NetFor("emp-1", key, payday, adjustments, engine.NewConsumedPeriods())
	assert.True(t, net.Equal(decimal.NewFromInt(300)),
		"overtime booked late in the month still lands on the month's payday")
}

func TestNetFor_IgnoresOtherEntitiesAndOtherMonths(t *testing.T) {
	payday := engine.NewDate(2024, time.April, 5)
	key := engine.PeriodKey("emp-1", payday, engine.FreqMonthly)

	adjustments := []engine.Adjustment{
		adj("emp-2", engine.AdjustIncrease, 9999, 2024, time.April, 5),
		adj("emp-1", engine.AdjustIncrease, 9999, 2024, time.May, 1),
		adj("emp-1", engine.AdjustIncrease, 9999, 2024, time.March, 31),
	}

	net := engine.NetFor("emp-1", key, payday, adjustments, engine.NewConsumedPeriods())
	assert.True(t, net.IsZero())
}

func TestNetFor_DateFormKeySpansOnlyTheOccurrenceDay(t *testing.T) {
	due := engine.NewDate(2024, time.February, 12)
	key := engine.PeriodKey("emp-1", due, engine.FreqWeekly)

	adjustments := []engine.Adjustment{
		adj("emp-1", engine.AdjustIncrease, 100, 2024, time.February, 12),
		adj("emp-1", engine.AdjustIncrease, 100, 2024, time.February, 13),
	}

	net := engine.NetFor("emp-1", key, due, adjustments, engine.NewConsumedPeriods())
	assert.True(t, net.Equal(decimal.NewFromInt(100)),
		"weekly periods net only the adjustments on the occurrence day itself")
}

func TestFinalAmount_ClampsAtZero(t *testing.T) {
	base := decimal.NewFromInt(1000)

	assert.True(t, engine.FinalAmount(base, decimal.NewFromInt(-1500)).IsZero(),
		"a payment can be wiped out but never goes negative")
	assert.True(t, engine.FinalAmount(base, decimal.NewFromInt(-1000)).IsZero())
	assert.True(t, engine.FinalAmount(base, decimal.NewFromInt(-999)).Equal(decimal.NewFromInt(1)))
	assert.True(t, engine.FinalAmount(base, decimal.Zero).Equal(base))
}
