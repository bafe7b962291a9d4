package scoreboard

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder glyphs for missing optional fields.
const (
	placeholderName = "-"
	placeholderNum  = "-"
	placeholderText = "?"
)

// Game is one schedule entry. It is read-only for the duration of a render pass.
type Game struct {
	Away   string
	Home   string
	Status string

	Linescore    *Linescore
	Decisions    *Decisions
	AwayProbable *ProbablePitcher
	HomeProbable *ProbablePitcher
}

// Linescore holds the in-game numeric state reported for live and finished games.
// Runs/hits/errors are pointers so that "not reported" is distinguishable from zero.
type Linescore struct {
	Inning  string // e.g. "Top 7th"
	Balls   int
	Strikes int
	Outs    int

	OnFirst  bool
	OnSecond bool
	OnThird  bool

	AwayRuns   *int
	AwayHits   *int
	AwayErrors *int
	HomeRuns   *int
	HomeHits   *int
	HomeErrors *int

	Pitcher string // current defensive pitcher
	Batter  string
}

// Decisions names the winning, losing and saving pitchers of a finished game.
type Decisions struct {
	Winner string
	Loser  string
	Save   string
}

// ProbablePitcher is the anticipated starter for a game that has not begun.
type ProbablePitcher struct {
	Name string
	Hand string // "R" or "L"
	Note string // season stat summary, e.g. "12-4, 2.95 ERA"
}

// Matchup returns the away-at-home header, e.g. "NYY @ BOS".
func (g Game) Matchup() string {
	return fmt.Sprintf("%s @ %s", g.Away, g.Home)
}

// Inning returns the inning descriptor, or a placeholder when no linescore is
// available yet.
func (g Game) Inning() string {
	if g.Linescore == nil || g.Linescore.Inning == "" {
		return placeholderNum
	}
	return g.Linescore.Inning
}

// AwayRuns returns the away run total as display text.
func (g Game) AwayRuns() string { return numField(g.Linescore, func(l *Linescore) *int { return l.AwayRuns }) }

// AwayHits returns the away hit total as display text.
func (g Game) AwayHits() string { return numField(g.Linescore, func(l *Linescore) *int { return l.AwayHits }) }

// AwayErrors returns the away error total as display text.
func (g Game) AwayErrors() string {
	return numField(g.Linescore, func(l *Linescore) *int { return l.AwayErrors })
}

// HomeRuns returns the home run total as display text.
func (g Game) HomeRuns() string { return numField(g.Linescore, func(l *Linescore) *int { return l.HomeRuns }) }

// HomeHits returns the home hit total as display text.
func (g Game) HomeHits() string { return numField(g.Linescore, func(l *Linescore) *int { return l.HomeHits }) }

// HomeErrors returns the home error total as display text.
func (g Game) HomeErrors() string {
	return numField(g.Linescore, func(l *Linescore) *int { return l.HomeErrors })
}

// Pitcher returns the last name of the current defensive pitcher.
func (g Game) Pitcher() string {
	if g.Linescore == nil {
		return placeholderName
	}
	return lastName(g.Linescore.Pitcher)
}

// Batter returns the last name of the current batter.
func (g Game) Batter() string {
	if g.Linescore == nil {
		return placeholderName
	}
	return lastName(g.Linescore.Batter)
}

// Winner returns the winning pitcher's name, or a placeholder.
func (g Game) Winner() string { return decisionField(g.Decisions, func(d *Decisions) string { return d.Winner }) }

// Loser returns the losing pitcher's name, or a placeholder.
func (g Game) Loser() string { return decisionField(g.Decisions, func(d *Decisions) string { return d.Loser }) }

// Save returns the saving pitcher's name, or a placeholder.
func (g Game) Save() string { return decisionField(g.Decisions, func(d *Decisions) string { return d.Save }) }

// Involves reports whether abbr names either side of the game.
func (g Game) Involves(abbr string) bool {
	if abbr == "" {
		return false
	}
	return strings.EqualFold(g.Away, abbr) || strings.EqualFold(g.Home, abbr)
}

// DisplayName returns the pitcher's name, or a placeholder when unannounced.
func (p *ProbablePitcher) DisplayName() string {
	if p == nil || p.Name == "" {
		return placeholderName
	}
	return p.Name
}

// Summary returns the pitcher's hand and stat note, each with its own placeholder.
func (p *ProbablePitcher) Summary() string {
	hand := placeholderText
	note := placeholderNum
	if p != nil && p.Hand != "" {
		hand = p.Hand
	}
	if p != nil && p.Note != "" {
		note = p.Note
	}
	return fmt.Sprintf("%s | %s", hand, note)
}

func numField(l *Linescore, pick func(*Linescore) *int) string {
	if l == nil {
		return placeholderNum
	}
	v := pick(l)
	if v == nil {
		return placeholderNum
	}
	return strconv.Itoa(*v)
}

func decisionField(d *Decisions, pick func(*Decisions) string) string {
	if d == nil || pick(d) == "" {
		return placeholderName
	}
	return pick(d)
}

// lastName returns the final whitespace-separated token of a full name.
func lastName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return placeholderName
	}
	return fields[len(fields)-1]
}
