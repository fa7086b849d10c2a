// Package builtins implements the commands every console session starts
// with.
package builtins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/footprint-tools/verbs/internal/actions/history"
	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/dispatchers"
	"github.com/footprint-tools/verbs/internal/forms"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

// Commands returns the built-in command specs bound to deps.
func Commands(deps Deps) []dispatchers.CommandSpec {
	b := builtins{deps}

	return []dispatchers.CommandSpec{
		{
			Name:     "echo",
			Summary:  "Print text, expanding $variables",
			Category: dispatchers.CategoryGeneral,
			Forms: []forms.Form{
				forms.MustCompile("<text: rest>").Runs(forms.Action(b.echo)),
				forms.MustCompile("").Runs(forms.Action(b.echo)),
			},
		},
		{
			Name:     "help",
			Summary:  "Show commands, or the forms of one command",
			Category: dispatchers.CategoryGeneral,
			Forms: []forms.Form{
				forms.MustCompile("").Runs(forms.Action(b.help)),
				forms.MustCompile("<command: word>").Runs(forms.Action(b.help)),
			},
		},
		{
			Name:     "sleep",
			Summary:  "Wait for a duration such as 250ms or 2s",
			Category: dispatchers.CategoryGeneral,
			Forms: []forms.Form{
				forms.MustCompile("<duration: duration>").Runs(forms.Action(b.sleep)),
			},
		},
		{
			Name:     "exit",
			Summary:  "Leave the console",
			Category: dispatchers.CategoryGeneral,
			Forms: []forms.Form{
				forms.MustCompile("").Runs(forms.HandlerFunc(b.exit)),
				forms.MustCompile("<code: i32>").Runs(forms.HandlerFunc(b.exit)),
			},
		},
		{
			Name:     "set",
			Summary:  "Assign a variable; the value's type is inferred",
			Category: dispatchers.CategoryVariables,
			Forms: []forms.Form{
				forms.MustCompile("<name: word> <value: i64>").Runs(forms.Action(b.set)),
				forms.MustCompile("<name: word> <value: f64>").Runs(forms.Action(b.set)),
				forms.MustCompile("<name: word> <value: bool>").Runs(forms.Action(b.set)),
				forms.MustCompile("<name: word> <value: duration>").Runs(forms.Action(b.set)),
				forms.MustCompile("<name: word> <value: string>").Runs(forms.Action(b.set)),
				forms.MustCompile("<name: word> <value: rest>").Runs(forms.Action(b.set)).
					Describe("anything else is stored as text"),
			},
		},
		{
			Name:     "get",
			Summary:  "Print a variable",
			Category: dispatchers.CategoryVariables,
			Forms: []forms.Form{
				forms.MustCompile("<name: word>").Runs(forms.Action(b.get)),
			},
		},
		{
			Name:     "unset",
			Summary:  "Remove a variable",
			Category: dispatchers.CategoryVariables,
			Forms: []forms.Form{
				forms.MustCompile("<name: word>").Runs(forms.Action(b.unset)),
			},
		},
		{
			Name:     "vars",
			Summary:  "List variables",
			Category: dispatchers.CategoryVariables,
			Forms: []forms.Form{
				forms.MustCompile("").Runs(forms.Action(b.vars)),
			},
		},
		{
			Name:     "add",
			Summary:  "Add two numbers, or add a number to a variable",
			Category: dispatchers.CategoryArithmetic,
			Forms: []forms.Form{
				forms.MustCompile("<a: decimal> <b: decimal>").Runs(forms.Action(b.add)),
				forms.MustCompile("<a: decimal> to <name: word>").Runs(forms.Action(b.addTo)),
			},
		},
		{
			Name:     "sum",
			Summary:  "Add numbers and numeric variables",
			Category: dispatchers.CategoryArithmetic,
			Forms: []forms.Form{
				forms.MustCompile("<values: rest>").Runs(forms.HandlerFunc(b.sum)),
			},
		},
		{
			Name:     "scale",
			Summary:  "Multiply a number by a factor",
			Category: dispatchers.CategoryArithmetic,
			Forms: []forms.Form{
				forms.MustCompile("<x: f64> by <factor: f64>").Runs(forms.Action(b.scale)),
			},
		},
		{
			Name:     "history",
			Summary:  "Show or clear this session's history",
			Category: dispatchers.CategoryHistory,
			Forms: []forms.Form{
				forms.MustCompile("").Runs(forms.Action(history.List(deps.History))),
				forms.MustCompile("clear").Runs(forms.Action(history.Clear(deps.History))),
				forms.MustCompile("of <command: word>").Runs(forms.Action(history.List(deps.History))),
				forms.MustCompile("<limit: u32>").Runs(forms.Action(history.List(deps.History))),
			},
		},
	}
}

type builtins struct {
	deps Deps
}

func (b builtins) echo(_ context.Context, args *arguments.Store) error {
	_, _ = b.deps.Printf("%s\n", b.deps.Vars.Expand(args.StringOr("text", "")))
	return nil
}

func (b builtins) help(_ context.Context, args *arguments.Store) error {
	name, err := args.String("command")
	if err != nil {
		_, _ = b.deps.Printf("%s", b.deps.Overview())
		return nil
	}

	text, ok := b.deps.Describe(name)
	if !ok {
		return fmt.Errorf("no command named %q", name)
	}
	_, _ = b.deps.Printf("%s", text)
	return nil
}

func (b builtins) sleep(ctx context.Context, args *arguments.Store) error {
	d, err := args.Duration("duration")
	if err != nil {
		return err
	}
	return b.deps.Sleep(ctx, d)
}

func (b builtins) exit(_ context.Context, args *arguments.Store) (int, error) {
	code := 0
	if n, err := args.Int("code"); err == nil {
		code = int(n)
	}
	b.deps.Exit(code)
	return code, nil
}

func (b builtins) set(_ context.Context, args *arguments.Store) error {
	name, err := args.String("name")
	if err != nil {
		return err
	}
	value, _ := args.Lookup("value")
	b.deps.Vars.Set(name, value)
	return nil
}

func (b builtins) get(_ context.Context, args *arguments.Store) error {
	name, err := args.String("name")
	if err != nil {
		return err
	}
	value, ok := b.deps.Vars.Get(name)
	if !ok {
		return fmt.Errorf("variable %q is not set", name)
	}
	_, _ = b.deps.Printf("%s\n", value)
	return nil
}

func (b builtins) unset(_ context.Context, args *arguments.Store) error {
	name, err := args.String("name")
	if err != nil {
		return err
	}
	if !b.deps.Vars.Delete(name) {
		return fmt.Errorf("variable %q is not set", name)
	}
	return nil
}

func (b builtins) vars(context.Context, *arguments.Store) error {
	names := b.deps.Vars.Names()
	if len(names) == 0 {
		_, _ = b.deps.Printf("%s\n", style.Muted("no variables"))
		return nil
	}

	for _, name := range names {
		value, _ := b.deps.Vars.Get(name)
		_, _ = b.deps.Printf("%s = %s %s\n", name, value, style.Muted("("+value.Kind().String()+")"))
	}
	return nil
}

func (b builtins) add(_ context.Context, args *arguments.Store) error {
	a, err := args.Decimal("a")
	if err != nil {
		return err
	}
	c, err := args.Decimal("b")
	if err != nil {
		return err
	}
	_, _ = b.deps.Printf("%s\n", a.Add(c))
	return nil
}

func (b builtins) addTo(_ context.Context, args *arguments.Store) error {
	a, err := args.Decimal("a")
	if err != nil {
		return err
	}
	name, err := args.String("name")
	if err != nil {
		return err
	}

	current := decimal.Zero
	if _, set := b.deps.Vars.Get(name); set {
		n, ok := b.deps.Vars.Number(name)
		if !ok {
			return fmt.Errorf("variable %q is not a number", name)
		}
		current = n
	}

	total := current.Add(a)
	b.deps.Vars.Set(name, arguments.DecimalValue(total))
	_, _ = b.deps.Printf("%s = %s\n", name, total)
	return nil
}

// errNotANumber is reported with exit code 2, like other input errors.
var errNotANumber = errors.New("not a number")

func (b builtins) sum(_ context.Context, args *arguments.Store) (int, error) {
	values, err := args.String("values")
	if err != nil {
		return 1, err
	}

	total := decimal.Zero
	for _, field := range strings.Fields(values) {
		n, err := decimal.NewFromString(field)
		if err != nil {
			var ok bool
			if n, ok = b.deps.Vars.Number(strings.TrimPrefix(field, "$")); !ok {
				return 2, fmt.Errorf("%w: %q", errNotANumber, field)
			}
		}
		total = total.Add(n)
	}

	_, _ = b.deps.Printf("%s\n", total)
	return 0, nil
}

func (b builtins) scale(_ context.Context, args *arguments.Store) error {
	x, err := args.Float("x")
	if err != nil {
		return err
	}
	factor, err := args.Float("factor")
	if err != nil {
		return err
	}
	_, _ = b.deps.Printf("%g\n", x*factor)
	return nil
}
