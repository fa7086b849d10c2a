package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// Shell names a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// RunningShell guesses the user's shell from $SHELL. It returns "" when the
// shell is unknown or unsupported.
func RunningShell() Shell {
	name := Shell(filepath.Base(os.Getenv("SHELL")))
	for _, s := range Shells {
		if s == name {
			return s
		}
	}
	return ""
}

// SourceInstructions returns the line that loads completions for program.
func SourceInstructions(shell Shell, program string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s script)"`, program, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish script | source`, program)
	default:
		return ""
	}
}

// RcFile returns the rc file for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// Script renders the completion script for shell.
func Script(shell Shell, program string, commands []CommandInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(program, commands), nil
	case ShellZsh:
		return GenerateZsh(program, commands), nil
	case ShellFish:
		return GenerateFish(program, commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", shell)
	}
}
