package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

// The SSA statement download uses the osss schema
// (http://ssa.gov/osss/schemas/2.0). encoding/xml matches on local names,
// so the structs below work regardless of the namespace prefix in use.

type statementEarnings struct {
	StartYear    int    `xml:"startYear,attr"`
	EndYear      int    `xml:"endYear,attr"`
	FicaEarnings string `xml:"FicaEarnings"`
}

type statementFile struct {
	XMLName  xml.Name
	Earnings []statementEarnings `xml:"EarningsRecord>Earnings"`
}

// ParseStatement decodes a Social Security statement XML document into an
// earnings record.
func ParseStatement(data []byte) (domain.EarningsRecord, error) {
	var statement statementFile
	if err := xml.Unmarshal(data, &statement); err != nil {
		return nil, fmt.Errorf("failed to parse statement XML: %w", err)
	}
	if len(statement.Earnings) == 0 {
		return nil, fmt.Errorf("statement contains no earnings entries")
	}

	record := make(domain.EarningsRecord, len(statement.Earnings))
	for _, entry := range statement.Earnings {
		amount, err := decimal.NewFromString(strings.TrimSpace(entry.FicaEarnings))
		if err != nil {
			return nil, fmt.Errorf("invalid FICA earnings for year %d: %w", entry.StartYear, err)
		}
		record[entry.StartYear] = amount
	}
	return record, nil
}

// LoadStatement reads and parses a statement XML file.
func LoadStatement(filename string) (domain.EarningsRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement %s: %w", filename, err)
	}
	return ParseStatement(data)
}
