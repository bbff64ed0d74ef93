package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopYearsCount is the number of highest-earning years the benefit formula
// averages over.
const TopYearsCount = 35

// TopYears holds the outcome of selecting the highest indexed-earnings
// years from an adjusted earnings mapping.
type TopYears struct {
	Values []decimal.Decimal // descending
	Sum    decimal.Decimal
	Cutoff decimal.Decimal // smallest value that made the cut
}

// SelectTopYears picks the n largest values from the adjusted earnings
// mapping and sums them. When fewer than n years exist, all of them are
// used; nothing is padded with zeros beyond what the record already holds.
func SelectTopYears(adjusted map[int]decimal.Decimal, n int) TopYears {
	values := make([]decimal.Decimal, 0, len(adjusted))
	for _, value := range adjusted {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i].GreaterThan(values[j]) })

	if len(values) > n {
		values = values[:n]
	}

	top := TopYears{Values: values, Sum: decimal.Zero, Cutoff: decimal.Zero}
	for _, value := range values {
		top.Sum = top.Sum.Add(value)
	}
	if len(values) > 0 {
		top.Cutoff = values[len(values)-1]
	}
	return top
}
