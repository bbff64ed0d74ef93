package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/ssgo/internal/reference"
)

func TestAIME(t *testing.T) {
	calc := NewBenefitCalculator(decimal.NewFromFloat(55628.60))

	aime := calc.AIME(decimal.NewFromInt(420000))
	assert.True(t, aime.Equal(decimal.NewFromInt(1000)), "AIME = %s", aime)
}

func TestBendPoints(t *testing.T) {
	calc := NewBenefitCalculator(reference.NationalAverageWageIndex().Latest())

	first, second := calc.BendPoints()

	// round(180 * 55628.60 / 9779.44) and round(1085 * 55628.60 / 9779.44)
	assert.True(t, first.Equal(decimal.NewFromInt(1024)), "first bend = %s", first)
	assert.True(t, second.Equal(decimal.NewFromInt(6172)), "second bend = %s", second)
}

func TestNormalMonthlyPiecewise(t *testing.T) {
	// Latest index chosen so the bend points land at 960 and 5787.
	calc := NewBenefitCalculator(decimal.NewFromFloat(52157.01))

	first, second := calc.BendPoints()
	assert.True(t, first.Equal(decimal.NewFromInt(960)), "first bend = %s", first)
	assert.True(t, second.Equal(decimal.NewFromInt(5787)), "second bend = %s", second)

	tests := []struct {
		name string
		aime float64
		want float64
	}{
		{"zero AIME", 0, 0},
		{"below first bend", 500, 450},      // 0.9 * 500
		{"at first bend", 960, 864},         // 0.9 * 960
		{"between bends", 1000, 876.8},      // 864 + 0.32 * 40
		{"at second bend", 5787, 2408.6},    // 864 + 0.32 * 4827 = 2408.64 floored
		{"above second bend", 6787, 2558.6}, // 2408.64 + 0.15 * 1000 = 2558.64 floored
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.NormalMonthly(decimal.NewFromFloat(tt.aime))
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)),
				"NormalMonthly(%v) = %s, want %v", tt.aime, got, tt.want)
		})
	}
}

func TestNormalMonthlyContinuityAtBends(t *testing.T) {
	calc := NewBenefitCalculator(reference.NationalAverageWageIndex().Latest())
	first, second := calc.BendPoints()

	// At each bend point the two adjoining formula branches agree; a hair
	// above should never pay less than the bend point itself.
	atFirst := calc.NormalMonthly(first)
	justAbove := calc.NormalMonthly(first.Add(decimal.NewFromFloat(0.01)))
	assert.True(t, justAbove.GreaterThanOrEqual(atFirst))

	atSecond := calc.NormalMonthly(second)
	justAboveSecond := calc.NormalMonthly(second.Add(decimal.NewFromFloat(0.01)))
	assert.True(t, justAboveSecond.GreaterThanOrEqual(atSecond))
}

func TestReducedMonthly(t *testing.T) {
	calc := NewBenefitCalculator(reference.NationalAverageWageIndex().Latest())

	reduced := calc.ReducedMonthly(decimal.NewFromFloat(876.8))
	// 0.7 * 876.8 = 613.76, floored to 613.7
	assert.True(t, reduced.Equal(decimal.NewFromFloat(613.7)), "reduced = %s", reduced)
}

func TestDelayedMonthly(t *testing.T) {
	calc := NewBenefitCalculator(reference.NationalAverageWageIndex().Latest())

	delayed := calc.DelayedMonthly(decimal.NewFromInt(1000))
	assert.Len(t, delayed, 3)

	// 12000 * 1.08 = 12960 -> 1080.0; * 1.08 = 13996.8 -> 1166.4;
	// * 1.08 = 15116.544 -> 1259.712 floored to 1259.7
	assert.True(t, delayed[0].Equal(decimal.NewFromFloat(1080.0)), "delayed[0] = %s", delayed[0])
	assert.True(t, delayed[1].Equal(decimal.NewFromFloat(1166.4)), "delayed[1] = %s", delayed[1])
	assert.True(t, delayed[2].Equal(decimal.NewFromFloat(1259.7)), "delayed[2] = %s", delayed[2])
}

func TestFloorToDime(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{876.8, 876.8},
		{876.89, 876.8},
		{876.81, 876.8},
		{0.09, 0},
		{0, 0},
	}

	for _, tt := range tests {
		got := FloorToDime(decimal.NewFromFloat(tt.in))
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)),
			"FloorToDime(%v) = %s, want %v", tt.in, got, tt.want)
	}
}

func TestFloorToDimeIdempotent(t *testing.T) {
	for _, v := range []float64{876.89, 1259.712, 0.05, 12345.678} {
		once := FloorToDime(decimal.NewFromFloat(v))
		twice := FloorToDime(once)
		assert.True(t, once.Equal(twice), "FloorToDime not idempotent for %v", v)
	}
}
