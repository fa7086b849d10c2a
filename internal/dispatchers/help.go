package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/verbs/internal/ui/style"
)

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' || c == '"' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	if cmd == "" {
		return style.Muted(rest)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// RenderOverview lists commands grouped by category.
func RenderOverview(title string, commands []UsageDescriptor) string {
	var out bytes.Buffer

	if title != "" {
		out.WriteString(style.Header(title))
		out.WriteString("\n\n")
	}

	grouped := make(map[CommandCategory][]UsageDescriptor)
	for _, cmd := range commands {
		grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(cat.String())
		out.WriteString("\n")

		sort.Slice(cmds, func(i, j int) bool {
			return cmds[i].Name < cmds[j].Name
		})

		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", cmd.Name)), cmd.Description)
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'help <command>' to read about a specific command.\n")
	return out.String()
}

// RenderCommand renders the usage forms of one command.
func RenderCommand(d UsageDescriptor) string {
	var out bytes.Buffer

	out.WriteString(style.Header(d.Name))
	if d.Description != "" {
		out.WriteString(" - ")
		out.WriteString(d.Description)
	}
	out.WriteString("\n\nUSAGE\n")
	for _, u := range d.Usage {
		out.WriteString("   ")
		out.WriteString(formatUsage(u))
		out.WriteString("\n")
	}
	return out.String()
}

// RenderTree lists every executable path of a command tree.
func RenderTree(title string, root *Node) string {
	var out bytes.Buffer

	if title != "" {
		out.WriteString(style.Header(title))
		out.WriteString("\n\n")
	}

	grouped := make(map[CommandCategory][]TreeUsage)
	width := 0
	for _, u := range CollectUsage(root) {
		grouped[u.Category] = append(grouped[u.Category], u)
		width = max(width, len(u.Usage))
	}

	for _, cat := range categoryOrder {
		usages := grouped[cat]
		if len(usages) == 0 {
			continue
		}

		out.WriteString(cat.String())
		out.WriteString("\n")
		for _, u := range usages {
			padded := u.Usage + strings.Repeat(" ", width-len(u.Usage))
			fmt.Fprintf(&out, "   %s  %s\n", formatUsage(padded), u.Summary)
		}
		out.WriteString("\n")
	}

	return out.String()
}
