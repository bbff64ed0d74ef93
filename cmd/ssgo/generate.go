package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ssgo/internal/datagen"
)

func generateCmd() *cobra.Command {
	var (
		income  int64
		growth  float64
		years   int
		endYear int
		asXML   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic earnings record for experimentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if endYear == 0 {
				endYear = time.Now().Year()
			}

			record, err := datagen.Generate(datagen.Options{
				StartIncome: decimal.NewFromInt(income),
				Growth:      decimal.NewFromFloat(growth),
				Years:       years,
				EndYear:     endYear,
			})
			if err != nil {
				return err
			}

			if asXML {
				_, err = os.Stdout.Write(datagen.StatementXML(record))
				return err
			}

			fmt.Println("earnings:")
			for _, year := range record.Years() {
				fmt.Printf("  %d: %s\n", year, record[year].StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&income, "income", 35000, "first year's earnings")
	cmd.Flags().Float64Var(&growth, "growth", 1.03, "year-over-year growth multiplier")
	cmd.Flags().IntVar(&years, "years", 32, "career length in years")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "first year excluded (default: current year)")
	cmd.Flags().BoolVar(&asXML, "xml", false, "emit statement XML instead of earnings YAML")
	return cmd
}
