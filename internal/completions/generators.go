package completions

import (
	"fmt"
	"strings"
)

// groups returns every command that has subcommands, keyed by the words
// typed after the program name.
func groups(commands []CommandInfo) []CommandInfo {
	var out []CommandInfo
	for _, c := range commands {
		if len(c.Subcommands) > 0 || len(c.Path) == 1 {
			out = append(out, c)
		}
	}
	return out
}

func typedWords(c CommandInfo) string {
	return strings.Join(c.Path[1:], " ")
}

func flagNames(commands []CommandInfo) []string {
	var names []string
	for _, c := range commands {
		for _, f := range c.Flags {
			names = append(names, f.Names...)
		}
	}
	return names
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func funcName(program string) string {
	return "_" + strings.NewReplacer("-", "_", ".", "_").Replace(program)
}

// GenerateBash renders a bash completion script.
func GenerateBash(program string, commands []CommandInfo) string {
	fn := funcName(program) + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local typed=\"${COMP_WORDS[*]:1:COMP_CWORD-1}\"\n\n")

	if flags := flagNames(commands); len(flags) > 0 {
		b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", shellQuote(strings.Join(flags, " ")))
		b.WriteString("        return\n")
		b.WriteString("    fi\n\n")
	}

	b.WriteString("    case \"$typed\" in\n")
	for _, c := range groups(commands) {
		fmt.Fprintf(&b, "        %s)\n", shellQuote(typedWords(c)))
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", shellQuote(strings.Join(c.Subcommands, " ")))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, program)
	return b.String()
}

func zshEntry(c CommandInfo) string {
	if c.Summary == "" {
		return shellQuote(c.Name)
	}
	return shellQuote(c.Name + ":" + c.Summary)
}

// zshEntries describes the words completable after c. Words that are not
// commands of their own, e.g. console commands after exec, have no summary.
func zshEntries(commands []CommandInfo, c CommandInfo) []string {
	var entries []string
	children := Children(commands, c.Path)
	for _, child := range children {
		entries = append(entries, zshEntry(child))
	}
	if len(children) == 0 {
		for _, name := range c.Subcommands {
			entries = append(entries, shellQuote(name))
		}
	}
	return entries
}

// GenerateZsh renders a zsh completion script.
func GenerateZsh(program string, commands []CommandInfo) string {
	fn := funcName(program)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", program)

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local typed=\"${words[2,CURRENT-1]}\"\n\n")
	if flags := flagNames(commands); len(flags) > 0 {
		b.WriteString("    if [[ \"$PREFIX\" == -* ]]; then\n")
		fmt.Fprintf(&b, "        compadd -- %s\n", strings.Join(flags, " "))
		b.WriteString("        return\n")
		b.WriteString("    fi\n\n")
	}
	b.WriteString("    case \"$typed\" in\n")
	for _, c := range groups(commands) {
		fmt.Fprintf(&b, "        %s)\n", shellQuote(typedWords(c)))
		if len(c.Path) == 1 {
			fmt.Fprintf(&b, "            %s_commands\n", fn)
		} else {
			b.WriteString("            local -a subcommands\n")
			entries := zshEntries(commands, c)
			fmt.Fprintf(&b, "            subcommands=(%s)\n", strings.Join(entries, " "))
			b.WriteString("            _describe 'command' subcommands\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, child := range Children(commands, []string{program}) {
		fmt.Fprintf(&b, "        %s\n", zshEntry(child))
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s \"$@\"\n", fn)
	return b.String()
}

// GenerateFish renders a fish completion script.
func GenerateFish(program string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", program)
	fmt.Fprintf(&b, "complete -c %s -f\n", program)

	for _, c := range commands {
		if len(c.Path) < 2 {
			continue
		}

		condition := "__fish_use_subcommand"
		if len(c.Path) > 2 {
			condition = "__fish_seen_subcommand_from " + c.Path[len(c.Path)-2]
		}
		fmt.Fprintf(&b, "complete -c %s -n %s -a %s", program, shellQuote(condition), shellQuote(c.Name))
		if c.Summary != "" {
			fmt.Fprintf(&b, " -d %s", shellQuote(c.Summary))
		}
		b.WriteString("\n")
	}

	for _, c := range commands {
		if len(c.Path) < 2 || len(c.Subcommands) == 0 || len(Children(commands, c.Path)) > 0 {
			continue
		}
		fmt.Fprintf(&b, "complete -c %s -n %s -a %s\n", program,
			shellQuote("__fish_seen_subcommand_from "+c.Name), shellQuote(strings.Join(c.Subcommands, " ")))
	}

	for _, c := range commands {
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c %s", program)
			for _, name := range f.Names {
				if long, ok := strings.CutPrefix(name, "--"); ok {
					fmt.Fprintf(&b, " -l %s", long)
				} else if short, ok := strings.CutPrefix(name, "-"); ok {
					fmt.Fprintf(&b, " -s %s", short)
				}
			}
			if f.HasValue {
				b.WriteString(" -r")
			}
			if f.Description != "" {
				fmt.Fprintf(&b, " -d %s", shellQuote(f.Description))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
