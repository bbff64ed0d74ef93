package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEarningsYAML(t *testing.T) {
	path := writeTempFile(t, "earnings.yaml", `
earnings:
  1998: 0
  1999: 31250.50
  2000: 35000
`)

	parser := NewInputParser()
	record, err := parser.LoadEarnings(path)
	require.NoError(t, err)

	require.Len(t, record, 3)
	assert.True(t, record[1999].Equal(decimal.NewFromFloat(31250.50)))
	assert.Equal(t, 1998, record.FirstYear())
	assert.Equal(t, 2000, record.LastYear())
}

func TestLoadEarningsXML(t *testing.T) {
	path := writeTempFile(t, "statement.xml", sampleStatement)

	parser := NewInputParser()
	record, err := parser.LoadEarnings(path)
	require.NoError(t, err)
	assert.Len(t, record, 3)
}

func TestLoadEarningsErrors(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unsupported extension", "earnings.txt", "whatever"},
		{"empty earnings map", "empty.yaml", "earnings: {}\n"},
		{"negative earnings", "negative.yaml", "earnings:\n  2000: -5\n"},
		{"invalid yaml", "broken.yaml", "earnings: [not: a map\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			_, err := parser.LoadEarnings(path)
			assert.Error(t, err)
		})
	}
}
