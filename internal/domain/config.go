package domain

// ConfigKey describes one rc file key.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string

	// Hidden keys are accepted but never listed.
	Hidden bool
	// HideIfEmpty keys are listed only once they have a value.
	HideIfEmpty bool
}

const (
	sectionConsole   = "Console"
	sectionHistory   = "History"
	sectionDisplay   = "Display"
	sectionLogging   = "Logging"
	sectionOverrides = "Color Overrides"
)

// ConfigSections returns the section names in display order.
func ConfigSections() []string {
	return []string{sectionConsole, sectionHistory, sectionDisplay, sectionLogging, sectionOverrides}
}

// ConfigKeys lists every key in `verbs config list` order.
var ConfigKeys = buildConfigKeys()

func buildConfigKeys() []ConfigKey {
	keys := []ConfigKey{
		{Section: sectionConsole, Name: "prompt", Default: "> ",
			Description: "Prompt shown by the interactive console"},
		{Section: sectionConsole, Name: "error_policy", Default: "furthest",
			Description: "Which failing form to report: furthest, last"},
		// The default depends on the data directory; see paths.CommandsFilePath.
		{Section: sectionConsole, Name: "commands_file",
			Description: "YAML file with extra command definitions"},

		{Section: sectionHistory, Name: "history_enabled", Default: "true",
			Description: "Record dispatched lines (true/false)"},
		{Section: sectionHistory, Name: "history_limit", Default: "20",
			Description: "Entries shown by history when no limit is given"},

		{Section: sectionDisplay, Name: "color", Default: "true",
			Description: "Colored output (true/false)"},
		{Section: sectionDisplay, Name: "pager", Default: "less -FRSX",
			Description: "Pager command for long output"},
		{Section: sectionDisplay, Name: "theme", Default: "default",
			Description: "Color theme: default, mono, ocean, contrast (optionally -dark or -light)"},
		{Section: sectionDisplay, Name: "display_date", Default: "Jan 02",
			Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd, or Go format"},
		{Section: sectionDisplay, Name: "display_time", Default: "24h",
			Description: "Time format: 12h, 24h"},

		{Section: sectionLogging, Name: "log_enabled", Default: "true",
			Description: "Write a log file (true/false)"},
		{Section: sectionLogging, Name: "log_level", Default: "warn",
			Description: "Minimum log level: debug, info, warn, error"},
	}

	for _, role := range []string{"success", "warning", "error", "info", "muted", "header"} {
		desc := "Theme " + role + " color (ANSI 0-255)"
		if role == "header" {
			desc = "Theme header style (ANSI 0-255 or 'bold')"
		}
		keys = append(keys, ConfigKey{
			Section:     sectionOverrides,
			Name:        "color_" + role,
			Description: desc,
			HideIfEmpty: true,
		})
	}
	return keys
}

var configKeyMap = func() map[string]ConfigKey {
	m := make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		m[key.Name] = key
	}
	return m
}()

// IsValidConfigKey reports whether name is a known key.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the static default of a known key.
func GetDefaultValue(name string) (string, bool) {
	key, ok := configKeyMap[name]
	return key.Default, ok
}

// VisibleConfigKeys returns every key that is not hidden, in order.
func VisibleConfigKeys() []ConfigKey {
	visible := make([]ConfigKey, 0, len(ConfigKeys))
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigKeysBySection groups the visible keys by section, keeping order.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range VisibleConfigKeys() {
		result[key.Section] = append(result[key.Section], key)
	}
	return result
}
