package scoreboard

import "strings"

// Status classifies a game's free-text status string into the rendering states
// the box formatter branches on.
type Status int

const (
	StatusOther Status = iota
	StatusLive
	StatusFinal
	StatusScheduled
)

// String returns a short label for the classification.
func (s Status) String() string {
	switch s {
	case StatusLive:
		return "live"
	case StatusFinal:
		return "final"
	case StatusScheduled:
		return "scheduled"
	default:
		return "other"
	}
}

// ClassifyStatus derives the rendering state from the raw status string reported
// by the schedule feed. Matching is by ordered substring rules so that variants
// like "Final/Tied" or "Pre-Game: Delayed" still classify. Anything unmatched is
// StatusOther and renders as a filler block.
func ClassifyStatus(raw string) Status {
	switch {
	case contains(raw, "In Progress"), strings.EqualFold(strings.TrimSpace(raw), "Live"):
		return StatusLive
	case contains(raw, "Final"), contains(raw, "Game Over"), contains(raw, "Completed"):
		return StatusFinal
	case contains(raw, "Scheduled"), contains(raw, "Pre-Game"), contains(raw, "Pre-game"), contains(raw, "Warmup"):
		return StatusScheduled
	default:
		return StatusOther
	}
}

func contains(raw, substr string) bool {
	return strings.Contains(raw, substr)
}
