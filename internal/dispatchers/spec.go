package dispatchers

import "github.com/footprint-tools/verbs/internal/forms"

// CommandSpec declares a command for a Registry.
type CommandSpec struct {
	Name    string
	Summary string

	// Usage lists example invocations for help output. When empty it is
	// derived from Forms.
	Usage []string

	// Forms are tried in order; the first one that matches the whole line
	// runs.
	Forms    []forms.Form
	Category CommandCategory
}

// UsageDescriptor is the help view of a registered command.
type UsageDescriptor struct {
	Name        string
	Usage       []string
	Description string
	Category    CommandCategory
}

// FormUsage renders one form of command name as a full invocation.
func FormUsage(name string, f forms.Form) string {
	if u := f.Usage(); u != "" {
		return name + " " + u
	}
	return name
}
