// Package logging builds the application's log/slog logger.
// Output is JSON by default or logfmt-style text, and the logger is shared with Uber's Fx container.
package logging
