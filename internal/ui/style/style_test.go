package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var semantic = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
}

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("VERBS_NO_COLOR", "")
	t.Setenv("VERBS_THEME", "")
	for _, key := range colorConfigKeys {
		t.Setenv("VERBS_"+strings.ToUpper(key), "")
	}
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init(false, nil)

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Equal(t, "test message", output)
			require.NotContains(t, output, "\x1b[")
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearColorEnv(t)
	Init(true, nil)
	defer Init(false, nil)

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Contains(t, output, "test message")
			require.Contains(t, output, "\x1b[")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "VERBS_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv(env, "1")

			Init(true, nil)
			require.False(t, Enabled())
			require.Equal(t, "test", Success("test"))
		})
	}
}

func TestEnabledReturnsCorrectState(t *testing.T) {
	clearColorEnv(t)

	Init(false, nil)
	require.False(t, Enabled())

	Init(true, nil)
	require.True(t, Enabled())

	Init(false, nil)
}

func TestLoadColorConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]string
		env  map[string]string
		want ColorConfig
	}{
		{
			name: "explicit theme",
			cfg:  map[string]string{"theme": "ocean-light"},
			want: Themes["ocean-light"],
		},
		{
			name: "unknown theme falls back",
			cfg:  map[string]string{"theme": "nope-dark"},
			want: Themes["default-dark"],
		},
		{
			name: "env theme wins over config",
			cfg:  map[string]string{"theme": "ocean-light"},
			env:  map[string]string{"VERBS_THEME": "mono-dark"},
			want: Themes["mono-dark"],
		},
		{
			name: "config override",
			cfg:  map[string]string{"theme": "contrast-dark", "color_error": "160"},
			want: func() ColorConfig {
				c := Themes["contrast-dark"]
				c.Error = "160"
				return c
			}(),
		},
		{
			name: "env override wins over config override",
			cfg:  map[string]string{"theme": "default-light", "color_header": "1"},
			env:  map[string]string{"VERBS_COLOR_HEADER": "bold"},
			want: Themes["default-light"],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.Equal(t, tt.want, LoadColorConfig(tt.cfg))
		})
	}
}

func TestResolveThemeName_KeepsSuffix(t *testing.T) {
	require.Equal(t, "mono-light", ResolveThemeName("mono-light"))
	require.Equal(t, "ocean-dark", ResolveThemeName("ocean-dark"))
}

func TestThemeNamesAreComplete(t *testing.T) {
	require.Len(t, Themes, len(ThemeNames))
	for _, base := range BaseThemeNames {
		require.Contains(t, Themes, base+"-dark")
		require.Contains(t, Themes, base+"-light")
	}
}

func TestStyler(t *testing.T) {
	clearColorEnv(t)
	Init(false, nil)

	s := NewStyler()
	require.False(t, s.Enabled())
	require.Equal(t, "x", s.Error("x"))
	require.Equal(t, "x", NopStyler{}.Header("x"))
}
