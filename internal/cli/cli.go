package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"dugout/internal/logger"
	"dugout/internal/statsapi"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const defaultColumns = 3

var (
	flagTeam    string
	flagDate    string
	flagColumns int
	flagNoColor bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dugout",
		Short: "Show today's MLB scoreboard in your terminal",
		Long: `A CLI tool that fetches the MLB schedule for a date and renders each game
as a colored, fixed-width box laid out in a grid.`,
		RunE: runScoreboard,
	}

	cmd.Flags().StringVar(&flagTeam, "team", "", "Team abbreviation (e.g. NYY) to pin to the top")
	cmd.Flags().StringVar(&flagDate, "date", "", "Schedule date as YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&flagColumns, "columns", defaultColumns, "Number of game boxes per row")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging to stderr")

	return cmd
}

// runScoreboard wires the real dependencies and runs the render pass.
func runScoreboard(cmd *cobra.Command, args []string) error {
	if flagColumns < 1 {
		return fmt.Errorf("--columns must be at least 1, got %d", flagColumns)
	}
	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	client := statsapi.NewClient(statsapi.Config{})

	opts := Options{
		Team:    flagTeam,
		Date:    flagDate,
		Columns: flagColumns,
	}
	deps := DefaultDeps(client)

	return Run(cmd.Context(), opts, deps)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
