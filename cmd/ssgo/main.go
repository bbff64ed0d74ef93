package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/config"
	"github.com/rgehrsitz/ssgo/internal/output"
	"github.com/rgehrsitz/ssgo/internal/reference"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ssgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "ssgo",
	Short: "Social Security benefit estimator",
	Long: "Estimates your projected Social Security retirement benefit from your " +
		"earnings record and compares it against investing the same payroll taxes " +
		"in a broad equity index.",
}

// loadTables resolves the reference tables: the built-in published data,
// optionally overlaid from a YAML file.
func loadTables(tablesFile string) (*reference.Tables, error) {
	if tablesFile == "" {
		return reference.DefaultTables(), nil
	}
	return reference.LoadTables(tablesFile)
}

func calculateCmd() *cobra.Command {
	var (
		format     string
		soft       bool
		tablesFile string
		delayYears int
		horizonAge int
	)

	cmd := &cobra.Command{
		Use:   "calculate [earnings-file]",
		Short: "Calculate benefits from a statement XML or earnings YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.GetFormatterByName(format)
			if err != nil {
				return err
			}

			tables, err := loadTables(tablesFile)
			if err != nil {
				return err
			}

			parser := config.NewInputParser()
			record, err := parser.LoadEarnings(args[0])
			if err != nil {
				if !soft {
					return err
				}
				log.Printf("WARN: %v", err)
				record = nil
			}

			engine := calculation.NewEngineWithOptions(tables, calculation.Options{
				SoftMissingInput:    soft,
				DelayedCreditYears:  delayYears,
				BreakEvenHorizonAge: horizonAge,
			}, simpleCLILogger{})

			result, err := engine.Calculate(record)
			if err != nil {
				return err
			}

			data, err := formatter.Format(result)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console",
		fmt.Sprintf("output format (%v)", output.FormatNames()))
	cmd.Flags().BoolVar(&soft, "soft", false,
		"substitute a zero-earnings placeholder instead of failing on missing input")
	cmd.Flags().StringVar(&tablesFile, "tables", "",
		"YAML file overlaying the built-in reference tables")
	cmd.Flags().IntVar(&delayYears, "delay-years", 0,
		"delayed claiming years to compute (default 3)")
	cmd.Flags().IntVar(&horizonAge, "horizon-age", 0,
		"claim-age break-even horizon (default 95)")
	return cmd
}

func main() {
	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
