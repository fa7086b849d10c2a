package config

import "strings"

// lineKey returns the key of a key=value line, or "" for blank lines,
// comments and malformed lines.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}

// Set assigns value to key in lines, keeping comments and order. It reports
// whether an existing line was updated rather than appended.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		if lineKey(line) != key {
			continue
		}

		// Keep an inline comment after the old value.
		_, oldValue, _ := strings.Cut(strings.TrimSpace(line), "=")
		if idx := strings.Index(oldValue, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(oldValue[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// Unset drops every line assigning key and reports whether any was found.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey(line) == key && key != "" {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
