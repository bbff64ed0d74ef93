package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

// Claiming ages for the three benefit variants the formula engine
// produces: earliest eligibility, full retirement age, and the delayed
// credit cap.
const (
	EarlyClaimAge     = 62
	FullRetirementAge = 67
	MaxClaimAge       = 70

	// DefaultBreakEvenHorizonAge bounds the cumulative comparison.
	DefaultBreakEvenHorizonAge = 95
)

// claimStream is one claiming strategy: a monthly amount that starts
// paying at a given age.
type claimStream struct {
	label    string
	startAge int
	monthly  decimal.Decimal
}

// cumulativeAt returns the total benefits received through the end of the
// year the claimant turns age.
func (cs claimStream) cumulativeAt(age int) decimal.Decimal {
	if age < cs.startAge {
		return decimal.Zero
	}
	years := decimal.NewFromInt(int64(age - cs.startAge + 1))
	return cs.monthly.Mul(monthsPerYear).Mul(years)
}

// AnalyzeClaimAges compares cumulative lifetime benefits across the
// reduced, normal, and delayed claiming variants and reports where each
// later strategy overtakes the earlier one.
func AnalyzeClaimAges(benefit *domain.BenefitResult, horizonAge int) domain.ClaimAgeAnalysis {
	if horizonAge <= 0 {
		horizonAge = DefaultBreakEvenHorizonAge
	}

	streams := []claimStream{
		{label: "claim at 62 (reduced)", startAge: EarlyClaimAge, monthly: benefit.ReducedMonthly},
		{label: "claim at 67 (normal)", startAge: FullRetirementAge, monthly: benefit.NormalMonthly},
	}
	if n := len(benefit.DelayedMonthly); n > 0 {
		startAge := FullRetirementAge + n
		streams = append(streams, claimStream{
			label:    fmt.Sprintf("claim at %d (delayed)", startAge),
			startAge: startAge,
			monthly:  benefit.DelayedMonthly[n-1],
		})
	}

	analysis := domain.ClaimAgeAnalysis{HorizonAge: horizonAge}
	for i := 0; i < len(streams); i++ {
		for j := i + 1; j < len(streams); j++ {
			analysis.Crossovers = append(analysis.Crossovers, crossover(streams[i], streams[j], horizonAge))
		}
	}
	return analysis
}

// crossover finds the first age at which the later stream's cumulative
// total meets or beats the earlier one's. A zero age means the later
// strategy never catches up within the horizon.
func crossover(earlier, later claimStream, horizonAge int) domain.ClaimCrossover {
	result := domain.ClaimCrossover{
		EarlierLabel: earlier.label,
		LaterLabel:   later.label,
		Advantage:    later.cumulativeAt(horizonAge).Sub(earlier.cumulativeAt(horizonAge)),
	}
	for age := later.startAge; age <= horizonAge; age++ {
		if later.cumulativeAt(age).GreaterThanOrEqual(earlier.cumulativeAt(age)) {
			result.CrossoverAge = age
			break
		}
	}
	return result
}
