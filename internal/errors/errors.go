// Package errors defines structured user-facing CLI errors with a category,
// optional usage text, and remediation steps, plus formatting helpers for
// terminal display.
package errors

// ErrorCategory classifies CLI errors for exit handling and display.
type ErrorCategory int

const (
	Argument ErrorCategory = iota
	Configuration
	Runtime
)

// String returns the human-readable category name.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error presented to the user. Message is the
// one-line description; Usage and Remediation are optional extras shown
// below it.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
}

func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates an Argument-category error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates an Argument-category error that also
// carries usage text.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a Configuration-category error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}
