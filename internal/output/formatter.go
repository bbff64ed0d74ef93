package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Format(result *domain.CalculationResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) (Formatter, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == normalized {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unsupported format: %s", name)
}

// FormatNames lists the registered formatter names.
func FormatNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}
