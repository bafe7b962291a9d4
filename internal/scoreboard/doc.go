// Package scoreboard provides the domain model and terminal rendering for MLB games.
//
// The scoreboard package converts schedule entries into fixed-width, ANSI-colored
// text boxes and lays them out in a grid. Rendering branches on a status
// classification (live, final, scheduled, other) derived once from the raw status
// string, and missing optional fields fall back to placeholder glyphs rather than
// failing.
package scoreboard
