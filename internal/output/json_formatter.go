package output

import (
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

// JSONFormatter emits the complete calculation result as indented JSON for
// downstream tooling.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return append(data, '\n'), nil
}
