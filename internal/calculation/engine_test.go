package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/reference"
)

func testTables() *reference.Tables {
	return &reference.Tables{
		WageIndex: reference.WageIndexSeries{
			2000: decimal.NewFromFloat(32154.82),
			2001: decimal.NewFromFloat(32921.92),
		},
		TaxRates: reference.TaxRateSchedule{
			1990: decimal.NewFromFloat(12.4),
		},
		EquityReturns: reference.EquityReturnSeries{
			2000: decimal.NewFromFloat(-9.10),
			2001: decimal.NewFromFloat(-11.89),
		},
	}
}

func TestEngineCalculate(t *testing.T) {
	engine := NewEngine(testTables())
	record := domain.EarningsRecord{
		2000: decimal.NewFromInt(20000),
		2001: decimal.NewFromInt(21000),
	}

	result, err := engine.Calculate(record)
	require.NoError(t, err)

	benefit := result.Benefit
	assert.Equal(t, 2, benefit.YearsAnalyzed)
	assert.Empty(t, benefit.MissingEarningYears)
	assert.True(t, benefit.TotalActualEarnings.Equal(decimal.NewFromInt(41000)))

	// Adjusted: 20000 * 1.02385... + 21000 * 1.0
	assert.InDelta(t, 41477.13, benefit.TotalAdjustedEarnings.InexactFloat64(), 0.01)
	// Both years fit in the top 35, nothing discarded.
	assert.True(t, benefit.Top35Earnings.Equal(benefit.TotalAdjustedEarnings))
	assert.True(t, benefit.DiscardedEarnings.IsZero())

	// AIME = top sum / 420
	assert.InDelta(t, 41477.13/420, benefit.AIME.InexactFloat64(), 0.01)

	// Bend points off the 2001 index: round(180*32921.92/9779.44) = 606,
	// round(1085*32921.92/9779.44) = 3653.
	assert.True(t, benefit.FirstBendPoint.Equal(decimal.NewFromInt(606)),
		"first bend = %s", benefit.FirstBendPoint)
	assert.True(t, benefit.SecondBendPoint.Equal(decimal.NewFromInt(3653)),
		"second bend = %s", benefit.SecondBendPoint)

	// AIME ~98.75 is below the first bend: benefit = 0.9 * AIME floored.
	assert.InDelta(t, 88.8, benefit.NormalMonthly.InexactFloat64(), 0.11)
	assert.Len(t, benefit.DelayedMonthly, 3)

	// The comparator ran off the same record.
	assert.True(t, result.Investment.TotalContributions.IsPositive())
	assert.NotEmpty(t, result.ClaimAges.Crossovers)
	assert.Empty(t, result.Warnings)
}

func TestEngineCalculateDoesNotMutateRecord(t *testing.T) {
	engine := NewEngine(testTables())
	record := domain.EarningsRecord{2000: decimal.NewFromInt(20000)}

	_, err := engine.Calculate(record)
	require.NoError(t, err)

	assert.Len(t, record, 1)
	assert.True(t, record[2000].Equal(decimal.NewFromInt(20000)))
}

func TestEngineCalculateIsRepeatable(t *testing.T) {
	// No cached partial state: two runs over the same record agree.
	engine := NewEngine(testTables())
	record := domain.EarningsRecord{
		2000: decimal.NewFromInt(20000),
		2001: decimal.NewFromInt(21000),
	}

	first, err := engine.Calculate(record)
	require.NoError(t, err)
	second, err := engine.Calculate(record)
	require.NoError(t, err)

	assert.True(t, first.Benefit.AIME.Equal(second.Benefit.AIME))
	assert.True(t, first.Investment.CurrentValue.Equal(second.Investment.CurrentValue))
}

func TestEngineEmptyRecordFails(t *testing.T) {
	engine := NewEngine(testTables())

	_, err := engine.Calculate(domain.EarningsRecord{})
	assert.ErrorIs(t, err, ErrNoEarnings)
}

func TestEngineEmptyRecordSoftMode(t *testing.T) {
	restore := nowFunc
	nowFunc = func() time.Time { return time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = restore }()

	engine := NewEngineWithOptions(testTables(), Options{SoftMissingInput: true}, nil)

	result, err := engine.Calculate(domain.EarningsRecord{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Benefit.YearsAnalyzed)
	assert.Equal(t, []int{2022}, result.Benefit.MissingEarningYears)
	assert.True(t, result.Benefit.NormalMonthly.IsZero())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "placeholder")
}

func TestEngineRejectsNegativeEarnings(t *testing.T) {
	engine := NewEngine(testTables())
	record := domain.EarningsRecord{2000: decimal.NewFromInt(-5)}

	_, err := engine.Calculate(record)
	assert.Error(t, err)
}

func TestEngineProjectionOptions(t *testing.T) {
	engine := NewEngineWithOptions(testTables(), Options{
		HorizonYears: []int{20},
		AnnuityRates: []decimal.Decimal{decimal.NewFromInt(4)},
	}, nil)
	record := domain.EarningsRecord{2000: decimal.NewFromInt(20000)}

	result, err := engine.Calculate(record)
	require.NoError(t, err)

	require.Len(t, result.Investment.LowHorizons, 1)
	assert.Equal(t, 20, result.Investment.LowHorizons[0].Years)
	require.Len(t, result.Investment.Current.Annuities, 1)
	assert.True(t, result.Investment.Current.Annuities[0].WithdrawalRate.Equal(decimal.NewFromInt(4)))
}

func TestEngineDelayedCreditYearsOption(t *testing.T) {
	engine := NewEngineWithOptions(testTables(), Options{DelayedCreditYears: 5}, NoopLogger{})
	record := domain.EarningsRecord{2000: decimal.NewFromInt(20000)}

	result, err := engine.Calculate(record)
	require.NoError(t, err)
	assert.Len(t, result.Benefit.DelayedMonthly, 5)
}
