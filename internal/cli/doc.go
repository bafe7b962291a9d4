// Package cli implements the command-line interface for dugout.
//
// The cli package provides the Cobra-based root command with flags for pinning
// a favorite team, choosing a date, setting the grid column count and disabling
// color. The render path runs through Run with injected dependencies (schedule
// fetcher, clock, output writer) so it is testable without network access.
package cli
