package errors

// InvalidArtValue reports a bad --art flag or config value.
func InvalidArtValue() *CLIError {
	return NewArgumentError("--art must be 'big' or 'small'.")
}

// InvalidSideValue reports a bad --side flag or config value.
func InvalidSideValue() *CLIError {
	return NewArgumentError("--side must be 'left' or 'right'.")
}

// ConfigLoadFailed reports a configuration file or environment problem.
func ConfigLoadFailed(cause error) *CLIError {
	return NewConfigError(
		cause.Error(),
		"check ~/.unisay/config.json for invalid values",
		"unset any UNISAY_* environment variables you don't recognize",
	)
}
