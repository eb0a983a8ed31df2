// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid name, ref out of range).
	UserError = 1

	// ConfigError indicates an unreadable or malformed configuration.
	ConfigError = 2

	// StoreError indicates a failure reading or writing task storage.
	StoreError = 3
)
