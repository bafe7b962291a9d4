// Package statsapi provides a typed HTTP client for the MLB Stats API schedule
// endpoint.
//
// The client performs a single GET of the day's schedule hydrated with
// linescore, decisions and probable pitchers, and maps the wire payload to
// scoreboard domain types. A missing or empty date entry in the response is
// reported as "no games", not as an error.
package statsapi
