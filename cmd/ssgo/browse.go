package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/tui"
)

func browseCmd() *cobra.Command {
	var (
		soft       bool
		tablesFile string
	)

	cmd := &cobra.Command{
		Use:   "browse [earnings-file]",
		Short: "Browse calculation results interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := loadTables(tablesFile)
			if err != nil {
				return err
			}

			engine := calculation.NewEngineWithOptions(tables, calculation.Options{
				SoftMissingInput: soft,
			}, nil)

			program := tea.NewProgram(tui.NewModel(args[0], engine), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&soft, "soft", false,
		"substitute a zero-earnings placeholder instead of failing on missing input")
	cmd.Flags().StringVar(&tablesFile, "tables", "",
		"YAML file overlaying the built-in reference tables")
	return cmd
}
