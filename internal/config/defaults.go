package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"art":        "",
		"side":       "left",
		"above":      false,
		"wrap":       "greedy",
		"strip_ansi": true,
	}
}
