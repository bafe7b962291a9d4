package scoreboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InnerWidth is the visible content width of a box between the side borders.
const InnerWidth = 24

// BoxWidth is the total rendered width of a box including borders.
const BoxWidth = InnerWidth + 4

// Box is the ordered sequence of rendered lines for one game. Every line has
// visible width BoxWidth.
type Box []string

// BuildBox renders one game as a bordered, fixed-width block. The content
// depends on the game's status classification: live games show the count and
// baserunners, finished games the pitching decisions, scheduled games the
// probable starters, and anything else blank filler.
func BuildBox(g Game) Box {
	st := ClassifyStatus(g.Status)

	b := Box{borderLine()}
	b = append(b,
		wrapLine(headerLine(g)),
		wrapLine(statusStyle(st).Render(g.Status)),
		wrapLine(teamLine(g.Away, g.AwayRuns(), g.AwayHits(), g.AwayErrors())),
		wrapLine(teamLine(g.Home, g.HomeRuns(), g.HomeHits(), g.HomeErrors())),
	)

	switch st {
	case StatusLive:
		b = append(b, liveBlock(g)...)
	case StatusFinal:
		b = append(b, finalBlock(g)...)
	case StatusScheduled:
		b = append(b, scheduledBlock(g)...)
	default:
		b = append(b, fillerBlock()...)
	}

	return append(b, borderLine())
}

// Height returns the number of rendered lines.
func (b Box) Height() int { return len(b) }

func borderLine() string {
	return strings.Repeat("-", BoxWidth)
}

// wrapLine pads content to the inner width and closes it with side borders.
func wrapLine(content string) string {
	return "| " + padRight(content, InnerWidth) + " |"
}

// blankLine is a borderless filler of box width, used when padding rows.
func blankLine() string {
	return strings.Repeat(" ", BoxWidth)
}

// headerLine puts the matchup on the left and the inning descriptor flush right.
func headerLine(g Game) string {
	matchup := g.Matchup()
	inning := g.Inning()
	return padRight(matchup, InnerWidth-lipgloss.Width(inning)) + inning
}

func teamLine(abbr, runs, hits, errs string) string {
	return fmt.Sprintf("%-4s R %-3s H %-3s E %s", abbr, runs, hits, errs)
}

func liveBlock(g Game) []string {
	var balls, strikes, outs int
	var first, second, third bool
	if ls := g.Linescore; ls != nil {
		balls, strikes, outs = ls.Balls, ls.Strikes, ls.Outs
		first, second, third = ls.OnFirst, ls.OnSecond, ls.OnThird
	}
	return []string{
		wrapLine(fmt.Sprintf("P %-10s B %s", g.Pitcher(), g.Batter())),
		wrapLine(fmt.Sprintf("B %s  S %s  O %s", indicators(balls, 4), indicators(strikes, 3), indicators(outs, 3))),
		wrapLine(fmt.Sprintf("1B %s  2B %s  3B %s", baseGlyph(first), baseGlyph(second), baseGlyph(third))),
	}
}

func finalBlock(g Game) []string {
	return []string{
		wrapLine("W " + g.Winner()),
		wrapLine("L " + g.Loser()),
		wrapLine("S " + g.Save()),
	}
}

func scheduledBlock(g Game) []string {
	return []string{
		wrapLine(fmt.Sprintf("%-4s %s", g.Away, g.AwayProbable.DisplayName())),
		wrapLine("     " + g.AwayProbable.Summary()),
		wrapLine(fmt.Sprintf("%-4s %s", g.Home, g.HomeProbable.DisplayName())),
		wrapLine("     " + g.HomeProbable.Summary()),
	}
}

func fillerBlock() []string {
	return []string{wrapLine(""), wrapLine(""), wrapLine("")}
}
