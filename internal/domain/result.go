package domain

import (
	"github.com/shopspring/decimal"
)

// BenefitResult holds the output of the wage-indexing and benefit-formula
// pipeline for a single earnings record.
type BenefitResult struct {
	YearsAnalyzed         int             `yaml:"years_analyzed" json:"years_analyzed"`
	MissingEarningYears   []int           `yaml:"missing_earning_years" json:"missing_earning_years"`
	TotalActualEarnings   decimal.Decimal `yaml:"total_actual_earnings" json:"total_actual_earnings"`
	TotalAdjustedEarnings decimal.Decimal `yaml:"total_adjusted_earnings" json:"total_adjusted_earnings"`

	// Top35Earnings is the sum of the 35 highest wage-indexed years;
	// DiscardedEarnings is everything the top-35 cut left behind, and
	// TopCutoff the smallest value that still made the cut.
	Top35Earnings     decimal.Decimal `yaml:"top_35_earnings" json:"top_35_earnings"`
	DiscardedEarnings decimal.Decimal `yaml:"discarded_earnings" json:"discarded_earnings"`
	TopCutoff         decimal.Decimal `yaml:"top_cutoff" json:"top_cutoff"`

	AIME            decimal.Decimal `yaml:"aime" json:"aime"`
	FirstBendPoint  decimal.Decimal `yaml:"first_bend_point" json:"first_bend_point"`
	SecondBendPoint decimal.Decimal `yaml:"second_bend_point" json:"second_bend_point"`

	// Monthly amounts. NormalMonthly is the PIA at full retirement age,
	// ReducedMonthly the worst-case early-claim amount (70% of PIA), and
	// DelayedMonthly holds one entry per year of delayed claiming past FRA.
	NormalMonthly  decimal.Decimal   `yaml:"normal_monthly" json:"normal_monthly"`
	ReducedMonthly decimal.Decimal   `yaml:"reduced_monthly" json:"reduced_monthly"`
	DelayedMonthly []decimal.Decimal `yaml:"delayed_monthly" json:"delayed_monthly"`

	// Per-year detail for reporting.
	AdjustmentFactors map[int]decimal.Decimal `yaml:"adjustment_factors" json:"adjustment_factors"`
	AdjustedEarnings  map[int]decimal.Decimal `yaml:"adjusted_earnings" json:"adjusted_earnings"`
}

// AnnuityIllustration shows what fixed-percentage annual withdrawals from a
// principal amount would pay per year and per month.
type AnnuityIllustration struct {
	WithdrawalRate decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"` // percent of principal per year
	AnnualIncome   decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	MonthlyIncome  decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
}

// ProjectedValue is a forward projection of the simulated investment
// balance under one growth-rate scenario, with annuity illustrations.
type ProjectedValue struct {
	Years     int                   `yaml:"years" json:"years"` // 0 for "today"
	Rate      decimal.Decimal       `yaml:"rate" json:"rate"`   // annual percent growth assumed
	Value     decimal.Decimal       `yaml:"value" json:"value"`
	Annuities []AnnuityIllustration `yaml:"annuities" json:"annuities"`
}

// InvestmentProjection is the output of the equity-investment comparator:
// the value today of having invested each year's payroll tax in a broad
// equity index, plus forward projections under low and average growth.
type InvestmentProjection struct {
	TotalContributions decimal.Decimal `yaml:"total_contributions" json:"total_contributions"`
	CurrentValue       decimal.Decimal `yaml:"current_value" json:"current_value"`

	// LowRate is half the smaller of the full-history and earnings-period
	// mean returns; AverageRate is the larger of the two.
	LowRate     decimal.Decimal `yaml:"low_rate" json:"low_rate"`
	AverageRate decimal.Decimal `yaml:"average_rate" json:"average_rate"`

	Current     ProjectedValue   `yaml:"current" json:"current"`
	LowHorizons []ProjectedValue `yaml:"low_horizons" json:"low_horizons"`
	AvgHorizons []ProjectedValue `yaml:"avg_horizons" json:"avg_horizons"`
}

// ClaimCrossover reports the age at which total benefits received under a
// later-claiming strategy overtake an earlier one.
type ClaimCrossover struct {
	EarlierLabel string          `yaml:"earlier_label" json:"earlier_label"`
	LaterLabel   string          `yaml:"later_label" json:"later_label"`
	CrossoverAge int             `yaml:"crossover_age" json:"crossover_age"` // 0 when never within horizon
	Advantage    decimal.Decimal `yaml:"advantage" json:"advantage"`         // later minus earlier cumulative at horizon end
}

// ClaimAgeAnalysis compares cumulative benefits across the three claiming
// variants the formula engine produces.
type ClaimAgeAnalysis struct {
	HorizonAge int              `yaml:"horizon_age" json:"horizon_age"`
	Crossovers []ClaimCrossover `yaml:"crossovers" json:"crossovers"`
}

// CalculationResult bundles everything one engine run produces. A fresh
// value is returned per call; the engine never retains or mutates it.
type CalculationResult struct {
	Benefit    BenefitResult        `yaml:"benefit" json:"benefit"`
	Investment InvestmentProjection `yaml:"investment" json:"investment"`
	ClaimAges  ClaimAgeAnalysis     `yaml:"claim_ages" json:"claim_ages"`
	Warnings   []string             `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}
