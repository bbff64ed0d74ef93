package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

func sampleResult() *domain.CalculationResult {
	return &domain.CalculationResult{
		Benefit: domain.BenefitResult{
			YearsAnalyzed:         2,
			MissingEarningYears:   []int{2002},
			TotalActualEarnings:   decimal.NewFromInt(41000),
			TotalAdjustedEarnings: decimal.NewFromFloat(41477.13),
			Top35Earnings:         decimal.NewFromFloat(41477.13),
			DiscardedEarnings:     decimal.Zero,
			TopCutoff:             decimal.NewFromInt(20477),
			AIME:                  decimal.NewFromFloat(98.75),
			FirstBendPoint:        decimal.NewFromInt(606),
			SecondBendPoint:       decimal.NewFromInt(3653),
			NormalMonthly:         decimal.NewFromFloat(88.8),
			ReducedMonthly:        decimal.NewFromFloat(62.1),
			DelayedMonthly:        []decimal.Decimal{decimal.NewFromFloat(95.9)},
			AdjustmentFactors: map[int]decimal.Decimal{
				2000: decimal.NewFromFloat(1.02385),
				2001: decimal.NewFromInt(1),
			},
			AdjustedEarnings: map[int]decimal.Decimal{
				2000: decimal.NewFromFloat(20477.13),
				2001: decimal.NewFromInt(21000),
			},
		},
		Investment: domain.InvestmentProjection{
			TotalContributions: decimal.NewFromInt(5084),
			CurrentValue:       decimal.NewFromFloat(6120.50),
			LowRate:            decimal.NewFromFloat(4.29),
			AverageRate:        decimal.NewFromFloat(8.58),
			Current: domain.ProjectedValue{
				Value: decimal.NewFromFloat(6120.50),
				Annuities: []domain.AnnuityIllustration{
					{
						WithdrawalRate: decimal.NewFromInt(4),
						AnnualIncome:   decimal.NewFromFloat(244.82),
						MonthlyIncome:  decimal.NewFromFloat(20.40),
					},
				},
			},
		},
		ClaimAges: domain.ClaimAgeAnalysis{
			HorizonAge: 95,
			Crossovers: []domain.ClaimCrossover{
				{
					EarlierLabel: "claim at 62 (reduced)",
					LaterLabel:   "claim at 67 (normal)",
					CrossoverAge: 78,
					Advantage:    decimal.NewFromInt(12345),
				},
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv", " Console "} {
		formatter, err := GetFormatterByName(name)
		require.NoError(t, err, "format %q", name)
		assert.NotNil(t, formatter)
	}

	_, err := GetFormatterByName("html")
	assert.Error(t, err)
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "Earnings record years analyzed")
	assert.Contains(t, text, "2002")
	assert.Contains(t, text, "Average indexed monthly earnings (AIME)")
	assert.Contains(t, text, "$98.75")
	assert.Contains(t, text, "Normal monthly benefit")
	assert.Contains(t, text, "$88.80")
	assert.Contains(t, text, "Increased monthly benefit FRA+1")
	assert.Contains(t, text, "EQUITY INVESTMENT COMPARISON")
	assert.Contains(t, text, "$6120.50")
	assert.Contains(t, text, "4.00% withdrawal")
	assert.Contains(t, text, "overtakes claim at 62 (reduced) at age 78")
}

func TestConsoleFormatterWarnings(t *testing.T) {
	result := sampleResult()
	result.Warnings = []string{"earnings record is empty; substituting a zero-earnings placeholder for 2022"}

	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "WARNING:"))
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "benefit")
	assert.Contains(t, decoded, "investment")
	assert.Contains(t, decoded, "claim_ages")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "year,adjustment_factor,adjusted_earnings", lines[0])
	assert.Equal(t, "2000,1.02385,20477.13", lines[1])
	assert.Equal(t, "2001,1.00000,21000.00", lines[2])
}

func TestLedgerLineAlignment(t *testing.T) {
	line := ledgerLine("Short label", "$1.00")
	assert.Contains(t, line, "Short label _")
	assert.True(t, strings.HasSuffix(line, " $1.00"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.56", FormatCurrency(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "8.58%", FormatPercentage(decimal.NewFromFloat(8.58)))
	assert.Equal(t, "1999, 2005", FormatYearList([]int{1999, 2005}))
	assert.Equal(t, "(none)", FormatYearList(nil))
}
