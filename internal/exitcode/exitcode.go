// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad flags, bad config).
	UserError = 1

	// IOError indicates the input closed or failed in the middle of an action.
	IOError = 2

	// Interrupted indicates the session was cancelled by a signal.
	Interrupted = 130
)
