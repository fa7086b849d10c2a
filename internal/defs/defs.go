// Package defs loads command definitions from YAML and compiles them into
// dispatcher command specs.
//
// A definitions file looks like:
//
//	commands:
//	  - name: greet
//	    summary: Say hello
//	    forms:
//	      - usage: "<who: word>"
//	        run: print
//	        template: "hello {{.who}}"
//	      - usage: "everyone"
//	        run: print
//	        template: "hello all"
//
// Each form names an action. Actions are supplied by the host, which decides
// what "print" or "dispatch" mean; the rendered template is handed to them.
package defs

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"text/template"

	"github.com/goccy/go-yaml"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/dispatchers"
	"github.com/footprint-tools/verbs/internal/forms"
)

// ErrInvalidDefinition wraps every validation failure.
var ErrInvalidDefinition = errors.New("invalid command definition")

// File is the top-level document.
type File struct {
	Commands []Command `yaml:"commands"`
}

// Command declares one command and its alternatives.
type Command struct {
	Name     string `yaml:"name"`
	Summary  string `yaml:"summary"`
	Category string `yaml:"category"`
	Forms    []Form `yaml:"forms"`
}

// Form declares one alternative of a command.
type Form struct {
	// Usage is a form spec such as `with <arg: u32>`.
	Usage string `yaml:"usage"`

	// Args gives kinds to untyped slots in Usage.
	Args map[string]string `yaml:"args"`

	// Run names the action executed when the form matches.
	Run string `yaml:"run"`

	// Template is rendered with the bound arguments and passed to the action.
	Template    string `yaml:"template"`
	Description string `yaml:"description"`
}

// Action runs a matched definition. text is the rendered template, or "" if
// the form has none.
type Action func(ctx context.Context, args *arguments.Store, text string) (int, error)

// Actions maps action names to implementations.
type Actions map[string]Action

// Load reads and parses a definitions file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a definitions document. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}
	return &f, nil
}

// Compile turns the file into command specs bound to actions.
func Compile(f *File, actions Actions) ([]dispatchers.CommandSpec, error) {
	specs := make([]dispatchers.CommandSpec, 0, len(f.Commands))
	seen := make(map[string]bool, len(f.Commands))

	for _, cmd := range f.Commands {
		if seen[cmd.Name] {
			return nil, fmt.Errorf("%w: command %q defined twice", ErrInvalidDefinition, cmd.Name)
		}
		seen[cmd.Name] = true

		spec, err := compileCommand(cmd, actions)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func compileCommand(cmd Command, actions Actions) (dispatchers.CommandSpec, error) {
	spec := dispatchers.CommandSpec{
		Name:     cmd.Name,
		Summary:  cmd.Summary,
		Category: dispatchers.ParseCategory(cmd.Category),
	}
	if len(cmd.Forms) == 0 {
		return spec, fmt.Errorf("%w: command %q has no forms", ErrInvalidDefinition, cmd.Name)
	}

	for i, fd := range cmd.Forms {
		f, err := compileForm(fd, actions)
		if err != nil {
			return spec, fmt.Errorf("%w: %s form %d: %w", ErrInvalidDefinition, cmd.Name, i+1, err)
		}
		spec.Forms = append(spec.Forms, f)
	}
	return spec, nil
}

func compileForm(fd Form, actions Actions) (forms.Form, error) {
	action, ok := actions[fd.Run]
	if !ok {
		return forms.Form{}, fmt.Errorf("unknown action %q", fd.Run)
	}

	if fd.Usage == "" && len(fd.Args) > 1 {
		return forms.Form{}, errors.New("usage is required to order more than one argument")
	}

	slots := make([]forms.Element, 0, len(fd.Args))
	for _, name := range slices.Sorted(maps.Keys(fd.Args)) {
		kind := fd.Args[name]
		p, ok := arguments.Lookup(kind)
		if !ok {
			return forms.Form{}, fmt.Errorf("slot %q: unknown kind %q", name, kind)
		}
		slots = append(slots, forms.Slot(name, p))
	}

	f, err := forms.Compile(fd.Usage, slots...)
	if err != nil {
		return forms.Form{}, err
	}

	var tmpl *template.Template
	if fd.Template != "" {
		tmpl, err = template.New(fd.Run).Option("missingkey=error").Parse(fd.Template)
		if err != nil {
			return forms.Form{}, fmt.Errorf("template: %w", err)
		}
	}

	return f.Runs(binding{action: action, tmpl: tmpl}).Describe(fd.Description), nil
}

// binding renders a form's template and hands it to its action.
type binding struct {
	action Action
	tmpl   *template.Template
}

func (b binding) Handle(ctx context.Context, args *arguments.Store) (int, error) {
	text, err := Render(b.tmpl, args)
	if err != nil {
		return 1, err
	}
	return b.action(ctx, args, text)
}

// Render executes tmpl with the bound arguments as its data. A nil template
// renders as "".
func Render(tmpl *template.Template, args *arguments.Store) (string, error) {
	if tmpl == nil {
		return "", nil
	}
	data := make(map[string]any, args.Len())
	for _, name := range args.Names() {
		v, _ := args.Lookup(name)
		data[name] = v.Any()
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
