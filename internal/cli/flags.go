package cli

import (
	"strings"

	"github.com/footprint-tools/verbs/internal/usage"
)

// Flag describes one global command-line flag.
type Flag struct {
	Names       []string
	ValueHint   string
	Description string
}

// TakesValue reports whether the flag expects a value.
func (f Flag) TakesValue() bool {
	return f.ValueHint != ""
}

var GlobalFlags = []Flag{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
	},
	{
		Names:       []string{"--version", "-v"},
		Description: "Show version",
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
	},
	{
		Names:       []string{"--no-pager"},
		Description: "Do not use pager for output",
	},
	{
		Names:       []string{"--pager"},
		ValueHint:   "<cmd>",
		Description: "Use specified pager for this command",
	},
	{
		Names:       []string{"--log-level"},
		ValueHint:   "<level>",
		Description: "Log at this level (debug, info, warn, error)",
	},
	{
		Names:       []string{"--quiet", "-q"},
		Description: "Suppress informational output",
	},
}

func lookupFlag(name string) (Flag, bool) {
	for _, f := range GlobalFlags {
		for _, n := range f.Names {
			if n == name {
				return f, true
			}
		}
	}
	return Flag{}, false
}

// SplitArgs separates global flags from command words.
//
// Flags are recognised until the first command word; after it only known
// global flags are taken out, so arguments such as "-1" reach the command
// untouched. Everything after "--" is a command word. Value flags accept
// both "--pager=less" and "--pager less"; the result always uses the "="
// form. Flags are normalised to their first name.
func SplitArgs(args []string) (flags []string, words []string, err error) {
	flags = []string{}
	words = []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "--" {
			words = append(words, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			words = append(words, a)
			continue
		}

		name, value, hasValue := strings.Cut(a, "=")
		f, ok := lookupFlag(name)
		if !ok {
			if len(words) == 0 {
				return nil, nil, usage.InvalidFlag(a)
			}
			words = append(words, a)
			continue
		}

		canonical := f.Names[0]
		switch {
		case !f.TakesValue():
			if hasValue {
				return nil, nil, usage.InvalidFlag(a)
			}
			flags = append(flags, canonical)
		case hasValue:
			flags = append(flags, canonical+"="+value)
		case i+1 < len(args):
			i++
			flags = append(flags, canonical+"="+args[i])
		default:
			return nil, nil, usage.MissingArgument(name)
		}
	}

	return flags, words, nil
}
