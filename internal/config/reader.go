package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/log"
	"github.com/footprint-tools/verbs/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating an empty
// file with owner-only permissions if there is none.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	// Ensure correct permissions if file already existed
	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// DefaultLines renders a fresh config file holding the default value of
// every visible key.
func DefaultLines() []string {
	var lines []string

	lines = append(lines, "# verbs configuration")
	lines = append(lines, "# Edit values below or use: verbs config set <key> <value>")
	lines = append(lines, "")

	for _, key := range domain.ConfigKeys {
		// Skip hidden keys (internal use only)
		if key.Hidden {
			continue
		}

		// Get the actual default value (some are dynamic)
		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}

		// HideIfEmpty keys are commented out (optional overrides)
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+Quote(value))
		}
	}

	return lines
}
