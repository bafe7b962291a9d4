// Package logger provides leveled, structured JSON logging for dugout.
//
// Logs go to stderr so they never interleave with the rendered scoreboard on
// stdout. The default logger discards everything below INFO; verbose mode
// swaps in a DEBUG logger via SetDefault.
package logger
