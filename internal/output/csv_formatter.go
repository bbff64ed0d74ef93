package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

// CSVFormatter exports the per-year indexing detail: adjustment factor and
// adjusted earnings for every year the record covers.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"year", "adjustment_factor", "adjusted_earnings"}); err != nil {
		return nil, err
	}

	years := make([]int, 0, len(result.Benefit.AdjustedEarnings))
	for year := range result.Benefit.AdjustedEarnings {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		factor, ok := result.Benefit.AdjustmentFactors[year]
		if !ok {
			// Years before the index coverage carry no computed factor.
			factor = decimal.NewFromInt(1)
		}
		row := []string{
			strconv.Itoa(year),
			factor.StringFixed(5),
			result.Benefit.AdjustedEarnings[year].StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
