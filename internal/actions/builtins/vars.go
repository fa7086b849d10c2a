package builtins

import (
	"os"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/footprint-tools/verbs/internal/arguments"
)

// Vars holds console variables. It is safe for concurrent use.
type Vars struct {
	mu     sync.RWMutex
	values map[string]arguments.Value
}

func NewVars() *Vars {
	return &Vars{values: make(map[string]arguments.Value)}
}

func (v *Vars) Set(name string, value arguments.Value) {
	v.mu.Lock()
	v.values[name] = value
	v.mu.Unlock()
}

func (v *Vars) Get(name string) (arguments.Value, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	value, ok := v.values[name]
	return value, ok
}

// Delete removes name and reports whether it was set.
func (v *Vars) Delete(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.values[name]
	delete(v.values, name)
	return ok
}

// Names returns the variable names, sorted.
func (v *Vars) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	names := make([]string, 0, len(v.values))
	for name := range v.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand replaces $name and ${name} with variable values. Unknown names
// are left as written.
func (v *Vars) Expand(s string) string {
	return os.Expand(s, func(name string) string {
		if value, ok := v.Get(name); ok {
			return value.String()
		}
		return "$" + name
	})
}

// Number returns name's value as a decimal, if it is numeric.
func (v *Vars) Number(name string) (decimal.Decimal, bool) {
	value, ok := v.Get(name)
	if !ok {
		return decimal.Decimal{}, false
	}
	return toDecimal(value)
}

func toDecimal(value arguments.Value) (decimal.Decimal, bool) {
	switch value.Kind() {
	case arguments.KindDecimal:
		d, _ := value.AsDecimal()
		return d, true
	case arguments.KindInt:
		i, _ := value.AsInt()
		return decimal.NewFromInt(i), true
	case arguments.KindUint, arguments.KindFloat:
		d, err := decimal.NewFromString(value.String())
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}
