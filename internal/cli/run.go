package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"dugout/internal/logger"
	"dugout/internal/scoreboard"
	"dugout/internal/statsapi"
)

// noGamesMessage is printed when the schedule comes back empty.
const noGamesMessage = "No Games found."

var bannerStyle = lipgloss.NewStyle().Bold(true)

// Fetcher retrieves the games scheduled for a date.
type Fetcher interface {
	FetchSchedule(ctx context.Context, date string) ([]scoreboard.Game, error)
}

// Options holds the render settings taken from flags.
type Options struct {
	Team    string
	Date    string
	Columns int
}

// Deps carries the injected collaborators for Run.
type Deps struct {
	Fetcher Fetcher
	Now     func() time.Time
	Out     io.Writer
}

// DefaultDeps returns the production dependencies for a schedule client.
func DefaultDeps(client *statsapi.Client) Deps {
	return Deps{
		Fetcher: client,
		Now:     time.Now,
		Out:     os.Stdout,
	}
}

// Run performs one render pass: fetch the schedule, pin the favorite team,
// format every game and print the grid. An empty schedule prints an
// informational message and returns nil.
func Run(ctx context.Context, opts Options, deps Deps) error {
	date := opts.Date
	if date == "" {
		date = deps.Now().Format("2006-01-02")
	}

	start := deps.Now()
	games, err := deps.Fetcher.FetchSchedule(ctx, date)
	if err != nil {
		return fmt.Errorf("fetching schedule: %w", err)
	}
	logger.Debug("fetched schedule", logger.Fields{
		"date":     date,
		"games":    len(games),
		"duration": deps.Now().Sub(start).String(),
	})

	if len(games) == 0 {
		fmt.Fprintln(deps.Out, noGamesMessage)
		return nil
	}

	scoreboard.PinTeam(games, opts.Team)

	fmt.Fprintln(deps.Out, banner(date))
	fmt.Fprintln(deps.Out)

	boxes := make([]scoreboard.Box, 0, len(games))
	for _, g := range games {
		boxes = append(boxes, scoreboard.BuildBox(g))
	}
	scoreboard.RenderGrid(deps.Out, boxes, opts.Columns)

	return nil
}

// banner returns the title line printed above the grid.
func banner(date string) string {
	return bannerStyle.Render(fmt.Sprintf("MLB Scoreboard | %s", date))
}
