package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/output"
)

// View renders the current state (tea.Model interface).
func (m Model) View() string {
	if m.loading {
		return SubtitleStyle.Render("Calculating " + m.path + "...")
	}
	if m.err != nil {
		return ErrorStyle.Render("Error: "+m.err.Error()) + "\n" +
			StatusBarStyle.Render("q quit  r retry")
	}
	if m.result == nil {
		return SubtitleStyle.Render("No results")
	}

	title := TitleStyle.Render("ssgo - Social Security Benefit Estimate")
	tabs := m.renderTabs()
	status := StatusBarStyle.Render("tab/←→ switch view  ↑↓ scroll  r recalculate  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, tabs, m.viewport.View(), status)
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, int(tabCount))
	for tab := TabSummary; tab < tabCount; tab++ {
		if tab == m.activeTab {
			rendered = append(rendered, ActiveTabStyle.Render(tab.String()))
		} else {
			rendered = append(rendered, InactiveTabStyle.Render(tab.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// tabContent renders the active tab's body.
func (m Model) tabContent() string {
	if m.result == nil {
		return ""
	}
	switch m.activeTab {
	case TabEarnings:
		return m.renderEarnings()
	case TabInvestment:
		return m.renderInvestment()
	default:
		return m.renderSummary()
	}
}

func (m Model) renderSummary() string {
	benefit := m.result.Benefit
	var b strings.Builder

	row := func(label string, value string) {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-42s", label)))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Earnings record years analyzed", fmt.Sprintf("%d", benefit.YearsAnalyzed))
	row("Earning years with 0 earnings", output.FormatYearList(benefit.MissingEarningYears))
	row("Total actual earnings", output.FormatCurrency(benefit.TotalActualEarnings))
	row("Total adjusted earnings", output.FormatCurrency(benefit.TotalAdjustedEarnings))
	row("Top 35 years of adjusted earnings", output.FormatCurrency(benefit.Top35Earnings))
	row("Average indexed monthly earnings (AIME)", output.FormatCurrency(benefit.AIME))
	row("First bend point", output.FormatCurrency(benefit.FirstBendPoint))
	row("Second bend point", output.FormatCurrency(benefit.SecondBendPoint))
	b.WriteString("\n")
	row("Reduced (70%) monthly benefit", output.FormatCurrency(benefit.ReducedMonthly))
	row("Normal monthly benefit", output.FormatCurrency(benefit.NormalMonthly))
	for i, monthly := range benefit.DelayedMonthly {
		row(fmt.Sprintf("Increased monthly benefit FRA+%d", i+1), output.FormatCurrency(monthly))
	}

	if len(m.result.ClaimAges.Crossovers) > 0 {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render("Claim age break-even"))
		b.WriteString("\n")
		for _, crossover := range m.result.ClaimAges.Crossovers {
			if crossover.CrossoverAge > 0 {
				fmt.Fprintf(&b, "%s overtakes %s at age %d\n",
					crossover.LaterLabel, crossover.EarlierLabel, crossover.CrossoverAge)
			} else {
				fmt.Fprintf(&b, "%s never overtakes %s by age %d\n",
					crossover.LaterLabel, crossover.EarlierLabel, m.result.ClaimAges.HorizonAge)
			}
		}
	}
	return b.String()
}

func (m Model) renderEarnings() string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-6s %14s %10s %14s", "Year", "Earnings", "Factor", "Adjusted")))
	b.WriteString("\n")

	years := make([]int, 0, len(m.record))
	for year := range m.record {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		factor, ok := m.result.Benefit.AdjustmentFactors[year]
		if !ok {
			factor = decimal.NewFromInt(1)
		}
		fmt.Fprintf(&b, "%-6d %14s %10s %14s\n",
			year,
			m.record[year].StringFixed(2),
			factor.StringFixed(5),
			m.result.Benefit.AdjustedEarnings[year].StringFixed(2))
	}
	return b.String()
}

func (m Model) renderInvestment() string {
	investment := m.result.Investment
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Total contributions:"),
		ValueStyle.Render(output.FormatCurrency(investment.TotalContributions)))
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Simulated value today:"),
		PositiveStyle.Render(output.FormatCurrency(investment.CurrentValue)))
	fmt.Fprintf(&b, "%s %s low / %s average\n\n", LabelStyle.Render("Scenario rates:"),
		output.FormatPercentage(investment.LowRate), output.FormatPercentage(investment.AverageRate))

	b.WriteString(SubtitleStyle.Render("Forward projections"))
	b.WriteString("\n")
	for _, projected := range investment.LowHorizons {
		fmt.Fprintf(&b, "  %2d years at %s: %s\n", projected.Years,
			output.FormatPercentage(projected.Rate), output.FormatCurrency(projected.Value))
	}
	for _, projected := range investment.AvgHorizons {
		fmt.Fprintf(&b, "  %2d years at %s: %s\n", projected.Years,
			output.FormatPercentage(projected.Rate), output.FormatCurrency(projected.Value))
	}

	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Annuity illustrations (today's value)"))
	b.WriteString("\n")
	for _, annuity := range investment.Current.Annuities {
		fmt.Fprintf(&b, "  %s withdrawal: %s/year (%s/month)\n",
			output.FormatPercentage(annuity.WithdrawalRate),
			output.FormatCurrency(annuity.AnnualIncome),
			output.FormatCurrency(annuity.MonthlyIncome))
	}
	return b.String()
}
