// Package exitcode defines the codes commands return to the shell and the
// process.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError covers bad arguments, validation failures, duplicate names
	// and out-of-range positions.
	UserError = 1

	// AuthError covers missing credentials and unreadable configuration.
	AuthError = 2

	// BackendError covers Google Tasks failures and export I/O errors.
	BackendError = 3
)
