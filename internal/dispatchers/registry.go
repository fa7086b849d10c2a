package dispatchers

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/footprint-tools/verbs/internal/forms"
)

type command struct {
	spec  CommandSpec
	usage UsageDescriptor
}

// Registry maps command names to their ordered forms.
//
// Registration is not synchronized; register everything before the first
// Dispatch. After that a Registry is read-only and safe to share.
type Registry struct {
	commands map[string]*command
	policy   ErrorPolicy
}

// Option configures a Registry.
type Option func(*Registry)

// WithErrorPolicy selects which failure Dispatch reports when every form
// fails.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{commands: make(map[string]*command)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a command. The name must be non-empty and alphabetic, there
// must be at least one form, and every form needs a handler.
func (r *Registry) Register(spec CommandSpec) error {
	if err := r.check(spec); err != nil {
		return err
	}
	r.add(spec)
	return nil
}

// RegisterAll adds every spec or none of them. A name may appear only once
// across the registry and the batch.
func (r *Registry) RegisterAll(specs ...CommandSpec) error {
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if err := r.check(spec); err != nil {
			return err
		}
		if seen[spec.Name] {
			return fmt.Errorf("dispatchers: command %q already registered", spec.Name)
		}
		seen[spec.Name] = true
	}
	for _, spec := range specs {
		r.add(spec)
	}
	return nil
}

func (r *Registry) check(spec CommandSpec) error {
	if err := validateName(spec.Name); err != nil {
		return err
	}
	if _, exists := r.commands[spec.Name]; exists {
		return fmt.Errorf("dispatchers: command %q already registered", spec.Name)
	}
	if len(spec.Forms) == 0 {
		return fmt.Errorf("dispatchers: command %q has no forms", spec.Name)
	}
	for i, f := range spec.Forms {
		if !f.Executable() {
			return fmt.Errorf("dispatchers: form %d of %q (%s) has no handler", i, spec.Name, FormUsage(spec.Name, f))
		}
	}
	return nil
}

func (r *Registry) add(spec CommandSpec) {
	usage := spec.Usage
	if len(usage) == 0 {
		usage = make([]string, len(spec.Forms))
		for i, f := range spec.Forms {
			usage[i] = FormUsage(spec.Name, f)
		}
	}

	cloned := make([]forms.Form, len(spec.Forms))
	copy(cloned, spec.Forms)
	spec.Forms = cloned

	r.commands[spec.Name] = &command{
		spec: spec,
		usage: UsageDescriptor{
			Name:        spec.Name,
			Usage:       usage,
			Description: spec.Summary,
			Category:    spec.Category,
		},
	}
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(spec CommandSpec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Usage returns the help descriptor for name.
func (r *Registry) Usage(name string) (UsageDescriptor, bool) {
	cmd, ok := r.commands[name]
	if !ok {
		return UsageDescriptor{}, false
	}
	return cmd.usage, true
}

// Names returns every registered command name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands returns the help descriptors of every command, sorted by name.
func (r *Registry) Commands() []UsageDescriptor {
	names := r.Names()
	out := make([]UsageDescriptor, len(names))
	for i, name := range names {
		out[i] = r.commands[name].usage
	}
	return out
}

// Policy returns the registry's error policy.
func (r *Registry) Policy() ErrorPolicy {
	return r.policy
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("dispatchers: empty command name")
	}
	for _, ch := range name {
		if !unicode.IsLetter(ch) {
			return fmt.Errorf("dispatchers: command name %q must be alphabetic", name)
		}
	}
	return nil
}
