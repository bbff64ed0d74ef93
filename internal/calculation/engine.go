package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/reference"
)

// nowFunc is swappable in tests.
var nowFunc = time.Now

// Options tune an engine run.
type Options struct {
	// SoftMissingInput makes an empty earnings record a warning instead
	// of an error: a single zero-earnings placeholder year (the current
	// year) is substituted so the pipeline still produces a result.
	SoftMissingInput bool

	// DelayedCreditYears is the number of delayed-claiming steps to
	// compute. Zero means the default of three.
	DelayedCreditYears int

	// BreakEvenHorizonAge bounds the claim-age comparison. Zero means
	// the default of 95.
	BreakEvenHorizonAge int

	// HorizonYears overrides the forward-projection horizons. Nil means
	// the default of 5 and 10 years.
	HorizonYears []int

	// AnnuityRates overrides the withdrawal percentages illustrated per
	// projected value. Nil means 3 through 6 percent.
	AnnuityRates []decimal.Decimal
}

// Engine runs the full benefit and investment-comparison pipeline over one
// earnings record. It holds only immutable reference data; Calculate is
// pure and returns a fresh result every call, so an Engine is safe to
// reuse across records.
type Engine struct {
	Tables  *reference.Tables
	Options Options
	Logger  Logger
}

// NewEngine creates an engine over the given reference tables.
func NewEngine(tables *reference.Tables) *Engine {
	return &Engine{Tables: tables, Logger: NoopLogger{}}
}

// NewEngineWithOptions creates an engine with explicit options.
func NewEngineWithOptions(tables *reference.Tables, options Options, logger Logger) *Engine {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Engine{Tables: tables, Options: options, Logger: logger}
}

// Calculate runs wage indexing, top-35 selection, the benefit formula,
// the investment comparison, and the claim-age analysis over the record.
// The record itself is never mutated.
func (e *Engine) Calculate(record domain.EarningsRecord) (*domain.CalculationResult, error) {
	result := &domain.CalculationResult{}

	if len(record) == 0 {
		if !e.Options.SoftMissingInput {
			return nil, fmt.Errorf("cannot calculate benefits: %w", ErrNoEarnings)
		}
		placeholderYear := nowFunc().Year()
		warning := fmt.Sprintf("earnings record is empty; substituting a zero-earnings placeholder for %d", placeholderYear)
		e.Logger.Warnf("%s", warning)
		result.Warnings = append(result.Warnings, warning)
		record = domain.EarningsRecord{placeholderYear: decimal.Zero}
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid earnings record: %w", err)
	}

	benefit, err := e.calculateBenefit(record)
	if err != nil {
		return nil, err
	}
	result.Benefit = *benefit

	comparator := NewInvestmentComparator(e.Tables.TaxRates, e.Tables.EquityReturns)
	if len(e.Options.HorizonYears) > 0 {
		comparator.HorizonYears = e.Options.HorizonYears
	}
	if len(e.Options.AnnuityRates) > 0 {
		comparator.AnnuityRates = e.Options.AnnuityRates
	}
	investment, err := comparator.Compare(record)
	if err != nil {
		return nil, fmt.Errorf("investment comparison failed: %w", err)
	}
	result.Investment = *investment

	result.ClaimAges = AnalyzeClaimAges(benefit, e.Options.BreakEvenHorizonAge)

	return result, nil
}

// calculateBenefit runs the indexing and formula stages.
func (e *Engine) calculateBenefit(record domain.EarningsRecord) (*domain.BenefitResult, error) {
	indexer := NewWageIndexer(e.Tables.WageIndex)
	adjusted, err := indexer.AdjustEarnings(record)
	if err != nil {
		return nil, fmt.Errorf("wage indexing failed: %w", err)
	}

	top := SelectTopYears(adjusted, TopYearsCount)

	calc := NewBenefitCalculator(e.Tables.WageIndex.Latest())
	if e.Options.DelayedCreditYears > 0 {
		calc.DelayedCreditYears = e.Options.DelayedCreditYears
	}

	aime := calc.AIME(top.Sum)
	firstBend, secondBend := calc.BendPoints()
	normal := calc.NormalMonthly(aime)

	totalAdjusted := decimal.Zero
	for _, value := range adjusted {
		totalAdjusted = totalAdjusted.Add(value)
	}

	e.Logger.Debugf("indexed %d years, AIME %s", len(record), aime.StringFixed(2))

	return &domain.BenefitResult{
		YearsAnalyzed:         len(record),
		MissingEarningYears:   record.MissingYears(),
		TotalActualEarnings:   record.Total(),
		TotalAdjustedEarnings: totalAdjusted,
		Top35Earnings:         top.Sum,
		DiscardedEarnings:     totalAdjusted.Sub(top.Sum),
		TopCutoff:             top.Cutoff,
		AIME:                  aime,
		FirstBendPoint:        firstBend,
		SecondBendPoint:       secondBend,
		NormalMonthly:         normal,
		ReducedMonthly:        calc.ReducedMonthly(normal),
		DelayedMonthly:        calc.DelayedMonthly(normal),
		AdjustmentFactors:     indexer.AdjustmentFactors(record.LastYear()),
		AdjustedEarnings:      adjusted,
	}, nil
}
