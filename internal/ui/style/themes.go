package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const envPrefix = "VERBS_"

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
	},
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		Header:  "bold",
	},

	// One accent color, everything else neutral.
	"mono-dark": {
		Success: "50",
		Warning: "229",
		Error:   "210",
		Info:    "50",
		Muted:   "245",
		Header:  "bold",
	},
	"mono-light": {
		Success: "30",
		Warning: "136",
		Error:   "124",
		Info:    "30",
		Muted:   "244",
		Header:  "bold",
	},

	"ocean-dark": {
		Success: "43",  // turquoise
		Warning: "221", // light gold
		Error:   "174", // light coral
		Info:    "75",  // sky blue
		Muted:   "245",
		Header:  "bold",
	},
	"ocean-light": {
		Success: "30",
		Warning: "130",
		Error:   "124",
		Info:    "25",
		Muted:   "244",
		Header:  "bold",
	},

	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
	},
	"contrast-light": {
		Success: "22",
		Warning: "130", // yellow is hard to read on white
		Error:   "124",
		Info:    "21",
		Muted:   "240",
		Header:  "bold",
	},
}

// colorConfigKeys lists the config keys that override a theme color.
var colorConfigKeys = []string{
	"color_success",
	"color_warning",
	"color_error",
	"color_info",
	"color_muted",
	"color_header",
}

// IsDarkBackground reports whether the terminal has a dark background.
// termenv reports true when detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name, based on
// the terminal background. Names that already carry a suffix are returned
// as-is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from cfg.
// Resolution priority:
// 1. Environment variable (VERBS_COLOR_*)
// 2. Config file value
// 3. Theme value (VERBS_THEME, then the theme key)
// 4. Default theme
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ""
	if envTheme := os.Getenv(envPrefix + "THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = cfgTheme
	} else {
		themeName = "default"
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for _, key := range colorConfigKeys {
		if v := os.Getenv(envPrefix + strings.ToUpper(key)); v != "" {
			setColorField(&result, key, v)
			continue
		}
		if v := cfg[key]; v != "" {
			setColorField(&result, key, v)
		}
	}

	return result
}

func setColorField(c *ColorConfig, key, value string) {
	switch key {
	case "color_success":
		c.Success = value
	case "color_warning":
		c.Warning = value
	case "color_error":
		c.Error = value
	case "color_info":
		c.Info = value
	case "color_muted":
		c.Muted = value
	case "color_header":
		c.Header = value
	}
}
