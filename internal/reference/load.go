package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadTables reads a YAML overlay file and merges it onto the built-in
// tables. Entries in the overlay add to or replace the defaults, so a
// yearly data refresh only needs the new rows:
//
//	wage_index:
//	  2021: 60575.07
//	equity_returns:
//	  2021: 28.71
func LoadTables(filename string) (*Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", filename, err)
	}

	var overlay Tables
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	tables := DefaultTables()
	for year, value := range overlay.WageIndex {
		tables.WageIndex[year] = value
	}
	for year, rate := range overlay.TaxRates {
		tables.TaxRates[year] = rate
	}
	for year, ret := range overlay.EquityReturns {
		tables.EquityReturns[year] = ret
	}

	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("tables validation failed: %w", err)
	}
	return tables, nil
}

// LoadEquityReturnsCSV loads a replacement equity return series from a CSV
// file with a header row and year,return data rows. Malformed rows are
// skipped.
func LoadEquityReturnsCSV(filename string) (EquityReturnSeries, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	series := make(EquityReturnSeries)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		year, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		ret, err := decimal.NewFromString(record[1])
		if err != nil {
			continue
		}
		series[year] = ret
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("no usable rows in %s", filename)
	}
	return series, nil
}
