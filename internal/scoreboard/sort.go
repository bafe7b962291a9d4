package scoreboard

import "sort"

// PinTeam stable-partitions games so that games involving abbr come first.
// Relative order is preserved within both partitions, so unrelated games are
// never reordered. An empty abbr leaves the slice untouched.
func PinTeam(games []Game, abbr string) {
	if abbr == "" {
		return
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Involves(abbr) && !games[j].Involves(abbr)
	})
}
