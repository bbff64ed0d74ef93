package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEarningsRecordSpan(t *testing.T) {
	record := EarningsRecord{
		1999: decimal.NewFromInt(1000),
		2005: decimal.Zero,
		2010: decimal.NewFromInt(3000),
	}

	assert.Equal(t, 1999, record.FirstYear())
	assert.Equal(t, 2010, record.LastYear())
	assert.Equal(t, []int{1999, 2005, 2010}, record.Years())
	assert.True(t, record.Total().Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, []int{2005}, record.MissingYears())
}

func TestEarningsRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  EarningsRecord
		wantErr bool
	}{
		{"valid", EarningsRecord{2000: decimal.NewFromInt(100)}, false},
		{"zero earnings allowed", EarningsRecord{2000: decimal.Zero}, false},
		{"empty record is valid shape", EarningsRecord{}, false},
		{"negative earnings", EarningsRecord{2000: decimal.NewFromInt(-1)}, true},
		{"absurd year", EarningsRecord{1800: decimal.NewFromInt(100)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEarningsRecordClone(t *testing.T) {
	record := EarningsRecord{2000: decimal.NewFromInt(100)}
	clone := record.Clone()

	clone[2001] = decimal.NewFromInt(200)
	assert.Len(t, record, 1)
	assert.Len(t, clone, 2)
}
