// Package completions generates shell completion scripts from a command
// tree.
package completions

import (
	"slices"

	"github.com/footprint-tools/verbs/internal/dispatchers"
)

// CommandInfo is one completable command path.
type CommandInfo struct {
	Name        string
	Path        []string // from the program name, e.g. ["verbs", "config", "set"]
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// FlagInfo describes a flag offered for completion.
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the literal words of the tree under root. The root
// itself is reported under program and carries flags.
func ExtractCommands(program string, root *dispatchers.Node, flags []FlagInfo) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, program, []string{program}, root.Summary(), flags, &commands)
	return commands
}

func extractNode(node *dispatchers.Node, name string, path []string, summary string, flags []FlagInfo, commands *[]CommandInfo) {
	var literals []*dispatchers.Node
	for _, child := range node.Children() {
		if child.IsLiteral() {
			literals = append(literals, child)
		}
	}

	cmd := CommandInfo{
		Name:    name,
		Path:    path,
		Summary: summary,
		Flags:   flags,
	}
	for _, child := range literals {
		cmd.Subcommands = append(cmd.Subcommands, child.Usage())
	}
	*commands = append(*commands, cmd)

	for _, child := range literals {
		childPath := append(slices.Clip(path), child.Usage())
		extractNode(child, child.Usage(), childPath, child.Summary(), nil, commands)
	}
}

// FindCommand finds a command by its path.
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if slices.Equal(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

// Children returns the commands directly under parent, in tree order.
func Children(commands []CommandInfo, parent []string) []CommandInfo {
	var out []CommandInfo
	for _, c := range commands {
		if len(c.Path) == len(parent)+1 && slices.Equal(c.Path[:len(parent)], parent) {
			out = append(out, c)
		}
	}
	return out
}
