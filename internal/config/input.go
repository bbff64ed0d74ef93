package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

// EarningsFile is the YAML shape for a hand-maintained earnings record:
//
//	earnings:
//	  1998: 0
//	  1999: 31250.50
type EarningsFile struct {
	Earnings map[int]decimal.Decimal `yaml:"earnings"`
}

// InputParser loads earnings records from the supported file formats.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadEarnings loads an earnings record from a statement XML file or an
// earnings YAML file, chosen by extension.
func (ip *InputParser) LoadEarnings(filename string) (domain.EarningsRecord, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xml":
		record, err := LoadStatement(filename)
		if err != nil {
			return nil, err
		}
		return ip.validate(record)
	case ".yaml", ".yml":
		return ip.loadYAML(filename)
	default:
		return nil, fmt.Errorf("unsupported earnings file format: %s", filename)
	}
}

func (ip *InputParser) loadYAML(filename string) (domain.EarningsRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file EarningsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Earnings) == 0 {
		return nil, fmt.Errorf("no earnings entries in %s", filename)
	}

	return ip.validate(domain.EarningsRecord(file.Earnings))
}

func (ip *InputParser) validate(record domain.EarningsRecord) (domain.EarningsRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("earnings validation failed: %w", err)
	}
	return record, nil
}
