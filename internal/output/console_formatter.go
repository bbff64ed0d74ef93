package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// ConsoleFormatter renders the full human-readable report: the benefit
// ledger in the classic statement style, the investment comparison, and
// the claim-age analysis.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	benefit := result.Benefit

	for _, warning := range result.Warnings {
		fmt.Fprintf(&buf, "WARNING: %s\n", warning)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "SOCIAL SECURITY BENEFIT ESTIMATE")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintln(&buf, ledgerLine("Earnings record years analyzed", fmt.Sprintf("%d", benefit.YearsAnalyzed)))
	fmt.Fprintln(&buf, ledgerLine("Earning years with 0 earnings", FormatYearList(benefit.MissingEarningYears)))
	fmt.Fprintln(&buf, ledgerLine("Total actual earnings in all years", FormatCurrency(benefit.TotalActualEarnings)))
	fmt.Fprintln(&buf, ledgerLine("Total adjusted earnings in all years", FormatCurrency(benefit.TotalAdjustedEarnings)))
	fmt.Fprintln(&buf, ledgerLine("Discarded adjusted earnings", FormatCurrency(benefit.DiscardedEarnings)))
	fmt.Fprintln(&buf, ledgerLine("Top 35 years of adjusted earnings", FormatCurrency(benefit.Top35Earnings)))
	fmt.Fprintln(&buf, ledgerLine("Smallest year kept in top 35", FormatCurrency(benefit.TopCutoff)))
	fmt.Fprintln(&buf, ledgerLine("Average indexed monthly earnings (AIME)", FormatCurrency(benefit.AIME)))
	fmt.Fprintln(&buf, ledgerLine("First bend point", FormatCurrency(benefit.FirstBendPoint)))
	fmt.Fprintln(&buf, ledgerLine("Second bend point", FormatCurrency(benefit.SecondBendPoint)))
	fmt.Fprintln(&buf, ledgerLine("Reduced (70%) monthly benefit", FormatCurrency(benefit.ReducedMonthly)))
	fmt.Fprintln(&buf, ledgerLine("Reduced (70%) annual benefit", FormatCurrency(benefit.ReducedMonthly.Mul(twelve))))
	fmt.Fprintln(&buf, ledgerLine("Normal monthly benefit", FormatCurrency(benefit.NormalMonthly)))
	fmt.Fprintln(&buf, ledgerLine("Normal annual benefit", FormatCurrency(benefit.NormalMonthly.Mul(twelve))))
	for i, monthly := range benefit.DelayedMonthly {
		fmt.Fprintln(&buf, ledgerLine(fmt.Sprintf("Increased monthly benefit FRA+%d", i+1), FormatCurrency(monthly)))
		fmt.Fprintln(&buf, ledgerLine(fmt.Sprintf("Increased annual benefit FRA+%d", i+1), FormatCurrency(monthly.Mul(twelve))))
	}

	investment := result.Investment
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "EQUITY INVESTMENT COMPARISON")
	fmt.Fprintln(&buf, "============================")
	fmt.Fprintln(&buf, ledgerLine("Total payroll tax contributions", FormatCurrency(investment.TotalContributions)))
	fmt.Fprintln(&buf, ledgerLine("Simulated value today", FormatCurrency(investment.CurrentValue)))
	fmt.Fprintln(&buf, ledgerLine("Low growth scenario rate", FormatPercentage(investment.LowRate)))
	fmt.Fprintln(&buf, ledgerLine("Average growth scenario rate", FormatPercentage(investment.AverageRate)))
	writeProjection(&buf, "Today", investment.Current)
	for _, projected := range investment.LowHorizons {
		writeProjection(&buf, fmt.Sprintf("In %d years (low)", projected.Years), projected)
	}
	for _, projected := range investment.AvgHorizons {
		writeProjection(&buf, fmt.Sprintf("In %d years (average)", projected.Years), projected)
	}

	claims := result.ClaimAges
	if len(claims.Crossovers) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "CLAIM AGE BREAK-EVEN")
		fmt.Fprintln(&buf, "====================")
		for _, crossover := range claims.Crossovers {
			if crossover.CrossoverAge > 0 {
				fmt.Fprintf(&buf, "%s overtakes %s at age %d (ahead %s by age %d)\n",
					crossover.LaterLabel, crossover.EarlierLabel, crossover.CrossoverAge,
					FormatCurrency(crossover.Advantage), claims.HorizonAge)
			} else {
				fmt.Fprintf(&buf, "%s never overtakes %s by age %d (behind %s)\n",
					crossover.LaterLabel, crossover.EarlierLabel, claims.HorizonAge,
					FormatCurrency(crossover.Advantage.Abs()))
			}
		}
	}

	return buf.Bytes(), nil
}

func writeProjection(buf *bytes.Buffer, label string, projected domain.ProjectedValue) {
	fmt.Fprintf(buf, "\n%s: %s\n", label, FormatCurrency(projected.Value))
	for _, annuity := range projected.Annuities {
		fmt.Fprintf(buf, "  %s withdrawal: %s/year (%s/month)\n",
			FormatPercentage(annuity.WithdrawalRate),
			FormatCurrency(annuity.AnnualIncome),
			FormatCurrency(annuity.MonthlyIncome))
	}
}
