package statsapi

import (
	"strings"

	"dugout/internal/scoreboard"
)

// mapGame converts one wire game into the scoreboard domain model.
func mapGame(g gameResponse) scoreboard.Game {
	return scoreboard.Game{
		Away:         teamAbbr(g.Teams.Away),
		Home:         teamAbbr(g.Teams.Home),
		Status:       g.Status.DetailedState,
		Linescore:    mapLinescore(g.Linescore),
		Decisions:    mapDecisions(g.Decisions),
		AwayProbable: mapProbable(g.Teams.Away.ProbablePitcher),
		HomeProbable: mapProbable(g.Teams.Home.ProbablePitcher),
	}
}

// teamAbbr prefers the team abbreviation, falling back to an upper-cased
// prefix of the full name when the hydrate omitted it.
func teamAbbr(side sideResponse) string {
	if side.Team.Abbreviation != "" {
		return side.Team.Abbreviation
	}
	name := strings.TrimSpace(side.Team.Name)
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name)
}

func mapLinescore(ls *linescoreResponse) *scoreboard.Linescore {
	if ls == nil {
		return nil
	}
	return &scoreboard.Linescore{
		Inning:     inningDescriptor(ls.InningHalf, ls.CurrentInningOrdinal),
		Balls:      ls.Balls,
		Strikes:    ls.Strikes,
		Outs:       ls.Outs,
		OnFirst:    ls.Offense.First != nil,
		OnSecond:   ls.Offense.Second != nil,
		OnThird:    ls.Offense.Third != nil,
		AwayRuns:   ls.Teams.Away.Runs,
		AwayHits:   ls.Teams.Away.Hits,
		AwayErrors: ls.Teams.Away.Errors,
		HomeRuns:   ls.Teams.Home.Runs,
		HomeHits:   ls.Teams.Home.Hits,
		HomeErrors: ls.Teams.Home.Errors,
		Pitcher:    personName(ls.Defense.Pitcher),
		Batter:     personName(ls.Offense.Batter),
	}
}

// inningDescriptor joins the half and ordinal, e.g. "Top 7th". Either part may
// be absent early in a game.
func inningDescriptor(half, ordinal string) string {
	if half == "" {
		return ordinal
	}
	if ordinal == "" {
		return half
	}
	return half + " " + ordinal
}

func mapDecisions(d *decisionsResponse) *scoreboard.Decisions {
	if d == nil {
		return nil
	}
	return &scoreboard.Decisions{
		Winner: personName(d.Winner),
		Loser:  personName(d.Loser),
		Save:   personName(d.Save),
	}
}

func mapProbable(p *probableResponse) *scoreboard.ProbablePitcher {
	if p == nil {
		return nil
	}
	return &scoreboard.ProbablePitcher{
		Name: p.FullName,
		Hand: p.PitchHand.Code,
		Note: p.Note,
	}
}

func personName(p *personResponse) string {
	if p == nil {
		return ""
	}
	return p.FullName
}
