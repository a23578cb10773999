package cli

import "fmt"

// Exit codes for the unisay CLI
const (
	// ExitSuccess indicates successful rendering or help output
	ExitSuccess = 0

	// ExitUsage indicates bad arguments, a missing message, or a config problem
	ExitUsage = 1
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitUsage
}
