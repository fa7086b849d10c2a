package config

import (
	"github.com/footprint-tools/verbs/internal/paths"
)

// Defaults holds the built-in value of every key. They are computed on
// demand and never written to the rc file.
var Defaults = map[string]func() string{
	"prompt":          func() string { return "> " },
	"error_policy":    func() string { return "furthest" },
	"commands_file":   paths.CommandsFilePath,
	"history_enabled": func() string { return "true" },
	"history_limit":   func() string { return "20" },
	"color":           func() string { return "true" },
	"pager":           func() string { return "less -FRSX" },
	"theme":           func() string { return "default" }, // resolved to -dark/-light at startup
	"display_date":    func() string { return "Jan 02" },
	"display_time":    func() string { return "24h" },
	"log_enabled":     func() string { return "true" },
	"log_level":       func() string { return "warn" },

	// Empty color overrides fall back to the theme.
	"color_success": func() string { return "" },
	"color_warning": func() string { return "" },
	"color_error":   func() string { return "" },
	"color_info":    func() string { return "" },
	"color_muted":   func() string { return "" },
	"color_header":  func() string { return "" },
}

// fileValues returns the parsed rc file, or nil when it cannot be read or
// parsed. A broken rc file never hides the defaults.
func fileValues() map[string]string {
	lines, err := ReadLines()
	if err != nil {
		return nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		return nil
	}
	return cfg
}

// Get resolves key: a VERBS_<KEY> environment variable, then the rc file,
// then the default. The bool reports whether any layer had the key.
func Get(key string) (string, bool) {
	if value, ok := lookupEnv(key); ok {
		return value, true
	}
	if value, ok := fileValues()[key]; ok {
		return value, true
	}
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// GetAll merges every layer: defaults, then the rc file, then environment
// overrides for the keys known so far.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, fn := range Defaults {
		result[key] = fn()
	}
	for key, value := range fileValues() {
		result[key] = value
	}
	for key := range result {
		if value, ok := lookupEnv(key); ok {
			result[key] = value
		}
	}
	return result, nil
}
