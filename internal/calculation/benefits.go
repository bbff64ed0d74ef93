package calculation

import (
	"github.com/shopspring/decimal"
)

// The bend point formula is anchored to the 1977 national average wage
// index value; the published dollar amounts below are in 1977 terms and
// scale with the wage index from there.
// See https://www.ssa.gov/oact/cola/piaformula.html
var (
	bendPointBaseIndex  = decimal.NewFromFloat(9779.44)
	firstBendPointBase  = decimal.NewFromInt(180)
	secondBendPointBase = decimal.NewFromInt(1085)
)

// Months in the 35-year averaging period.
var aimeMonths = decimal.NewFromInt(TopYearsCount * 12)

// PIA formula marginal rates.
var (
	rateBelowFirstBend  = decimal.NewFromFloat(0.90)
	rateBetweenBends    = decimal.NewFromFloat(0.32)
	rateAboveSecondBend = decimal.NewFromFloat(0.15)
	earlyClaimFactor    = decimal.NewFromFloat(0.70)
	delayedCreditFactor = decimal.NewFromFloat(1.08)
	monthsPerYear       = decimal.NewFromInt(12)
)

// BenefitCalculator converts aggregated indexed earnings into monthly
// benefit amounts via the bend-point formula.
type BenefitCalculator struct {
	// LatestIndex is the most recent national average wage index value;
	// it positions the bend points.
	LatestIndex decimal.Decimal

	// DelayedCreditYears is how many yearly delayed-claiming steps to
	// compute. Credits stop at age 70, so a worker with a full retirement
	// age of 67 gets three.
	DelayedCreditYears int
}

// NewBenefitCalculator creates a benefit calculator for the given latest
// wage index value with the standard three delayed-credit steps.
func NewBenefitCalculator(latestIndex decimal.Decimal) *BenefitCalculator {
	return &BenefitCalculator{LatestIndex: latestIndex, DelayedCreditYears: 3}
}

// AIME computes the average indexed monthly earnings from the top-35 sum.
func (bc *BenefitCalculator) AIME(topSum decimal.Decimal) decimal.Decimal {
	return topSum.Div(aimeMonths)
}

// BendPoints returns the two PIA formula thresholds, scaled to the latest
// wage index and rounded to whole dollars.
func (bc *BenefitCalculator) BendPoints() (first, second decimal.Decimal) {
	first = firstBendPointBase.Mul(bc.LatestIndex).Div(bendPointBaseIndex).Round(0)
	second = secondBendPointBase.Mul(bc.LatestIndex).Div(bendPointBaseIndex).Round(0)
	return first, second
}

// NormalMonthly computes the primary insurance amount: 90% of AIME up to
// the first bend point, 32% between the bend points, 15% beyond the
// second. The result is floored to the nearest ten cents.
func (bc *BenefitCalculator) NormalMonthly(aime decimal.Decimal) decimal.Decimal {
	first, second := bc.BendPoints()

	var benefit decimal.Decimal
	switch {
	case aime.LessThanOrEqual(first):
		benefit = rateBelowFirstBend.Mul(aime)
	case aime.LessThanOrEqual(second):
		benefit = rateBelowFirstBend.Mul(first).
			Add(rateBetweenBends.Mul(aime.Sub(first)))
	default:
		benefit = rateBelowFirstBend.Mul(first).
			Add(rateBetweenBends.Mul(second.Sub(first))).
			Add(rateAboveSecondBend.Mul(aime.Sub(second)))
	}
	return FloorToDime(benefit)
}

// ReducedMonthly computes the worst-case early-claim benefit: a flat 70%
// of the normal benefit. The true reduction depends on birth date and
// claiming month; 70% is the floor for a full retirement age of 67, kept
// as a deliberate approximation.
func (bc *BenefitCalculator) ReducedMonthly(normal decimal.Decimal) decimal.Decimal {
	return FloorToDime(earlyClaimFactor.Mul(normal))
}

// DelayedMonthly computes the monthly benefit for each year of delayed
// claiming past full retirement age. The annualized benefit grows 8% per
// delay year; each step converts back to monthly and floors to ten cents.
func (bc *BenefitCalculator) DelayedMonthly(normal decimal.Decimal) []decimal.Decimal {
	increased := make([]decimal.Decimal, 0, bc.DelayedCreditYears)
	annual := normal.Mul(monthsPerYear)
	for i := 0; i < bc.DelayedCreditYears; i++ {
		annual = annual.Mul(delayedCreditFactor)
		increased = append(increased, FloorToDime(annual.Div(monthsPerYear)))
	}
	return increased
}

// FloorToDime truncates a dollar amount downward to the nearest ten cents.
// Benefit amounts are published this way; note truncation, not rounding.
func FloorToDime(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(10)).Floor().Div(decimal.NewFromInt(10))
}
