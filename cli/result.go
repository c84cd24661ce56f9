package cli

// CommandError signals a command failure with a specific exit code.
// Commands return this after handling all output (printing errors/warnings
// to stderr) so main can centralize exit-code handling instead of a command
// calling os.Exit directly mid-run.
type CommandError struct {
	exitCode int
}

// NewCommandError creates a CommandError with the given exit code.
func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return "command failed"
}

// ExitCode returns the exit code associated with this error.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}
