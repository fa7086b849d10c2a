package arguments

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a fresh parser for a registered type identifier.
type Factory func() Parser

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func init() {
	for _, bits := range []int{8, 16, 32, 64} {
		mustRegister(fmt.Sprintf("i%d", bits), func() Parser { return Int(bits) })
		mustRegister(fmt.Sprintf("u%d", bits), func() Parser { return Uint(bits) })
	}
	mustRegister("f32", func() Parser { return Float(32) })
	mustRegister("f64", func() Parser { return Float(64) })
	mustRegister("int", func() Parser { return Int(64) })
	mustRegister("uint", func() Parser { return Uint(64) })
	mustRegister("float", func() Parser { return Float(64) })
	mustRegister("string", String)
	mustRegister("word", Word)
	mustRegister("text", Text)
	mustRegister("rest", Rest)
	mustRegister("unit", Unit)
	mustRegister("bool", Bool)
	mustRegister("duration", Duration)
	mustRegister("decimal", Decimal)
}

// Register makes a parser available under identifier for declarative form
// specs. It returns an error if the identifier is already taken.
func Register(identifier string, factory Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if identifier == "" {
		return fmt.Errorf("arguments: empty type identifier")
	}
	if _, exists := registry[identifier]; exists {
		return fmt.Errorf("arguments: type %q already registered", identifier)
	}
	registry[identifier] = factory
	return nil
}

func mustRegister(identifier string, factory Factory) {
	if err := Register(identifier, factory); err != nil {
		panic(err)
	}
}

// Lookup returns a new parser for identifier.
func Lookup(identifier string) (Parser, bool) {
	registryMu.RLock()
	factory, ok := registry[identifier]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Identifiers lists every registered type identifier, sorted.
func Identifiers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
