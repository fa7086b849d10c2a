package completions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbs/internal/dispatchers"
)

func TestGenerate(t *testing.T) {
	commands := ExtractCommands("verbs", buildTestTree(), testFlags)

	tests := []struct {
		shell      Shell
		wantPrefix string
		want       []string
	}{
		{
			shell:      ShellBash,
			wantPrefix: "# verbs bash completion script",
			want: []string{
				"_verbs_completions()",
				"complete -F _verbs_completions verbs",
				`compgen -W 'config exec'`,
				`'config')`,
				`compgen -W 'get set'`,
				`compgen -W '--help -h --pager'`,
			},
		},
		{
			shell:      ShellZsh,
			wantPrefix: "#compdef verbs",
			want: []string{
				"_verbs()",
				"_verbs_commands()",
				"_describe",
				"'config:Manage settings'",
				"'exec:Run one line'",
				"'get:Get a setting'",
			},
		},
		{
			shell:      ShellFish,
			wantPrefix: "# verbs fish completion script",
			want: []string{
				"complete -c verbs -f",
				"-n '__fish_use_subcommand' -a 'config' -d 'Manage settings'",
				"-n '__fish_seen_subcommand_from config' -a 'get'",
				"complete -c verbs -l help -s h -d 'Show help'",
				"complete -c verbs -l pager -r",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			script, err := Script(tt.shell, "verbs", commands)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(script, tt.wantPrefix))
			for _, want := range tt.want {
				require.Contains(t, script, want)
			}
		})
	}
}

func TestGenerate_EmptyTree(t *testing.T) {
	commands := ExtractCommands("verbs", dispatchers.NewTree().Root(), nil)

	require.Contains(t, GenerateBash("verbs", commands), "_verbs_completions()")
	require.Contains(t, GenerateZsh("verbs", commands), "#compdef verbs")
	require.Contains(t, GenerateFish("verbs", commands), "complete -c verbs -f")
}

func TestScript_Unsupported(t *testing.T) {
	_, err := Script("tcsh", "verbs", nil)
	require.ErrorContains(t, err, "unsupported shell")
}

func TestShellQuote(t *testing.T) {
	require.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestGenerate_PlainWords(t *testing.T) {
	commands := ExtractCommands("verbs", buildTestTree(), nil)
	exec := FindCommand(commands, []string{"verbs", "exec"})
	require.NotNil(t, exec)
	exec.Subcommands = []string{"echo", "sum"}

	require.Contains(t, GenerateBash("verbs", commands), "'exec')\n            COMPREPLY=($(compgen -W 'echo sum'")
	require.Contains(t, GenerateZsh("verbs", commands), "subcommands=('echo' 'sum')")
	require.Contains(t, GenerateFish("verbs", commands), "-n '__fish_seen_subcommand_from exec' -a 'echo sum'")
}

func TestFlagNames(t *testing.T) {
	commands := ExtractCommands("verbs", buildTestTree(), testFlags)
	require.Equal(t, []string{"--help", "-h", "--pager"}, flagNames(commands))
	require.Empty(t, flagNames(nil))
}
