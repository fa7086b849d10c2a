package config

import (
	"fmt"
	"strings"
)

// Parse reads key=value lines into a map. Blank lines and lines starting
// with '#' are skipped, a leading BOM is ignored, a trailing " # comment"
// is dropped and a value wrapped in double quotes is unquoted. Later keys
// override earlier ones.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '='", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquote(stripComment(strings.TrimSpace(value)))
	}

	return cfg, nil
}

func stripComment(value string) string {
	if strings.HasPrefix(value, "\"") {
		if end := strings.IndexByte(value[1:], '"'); end >= 0 {
			return value[:end+2]
		}
		return value
	}
	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

// Quote wraps values that would not survive Parse unchanged.
func Quote(value string) string {
	if value != strings.TrimSpace(value) || strings.Contains(value, " ") {
		return "\"" + value + "\""
	}
	return value
}
