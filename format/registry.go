package format

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps rule names to rules. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry returns a new registry holding Builtins.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, r := range Builtins() {
		if err := reg.Register(r); err != nil {
			panic(err)
		}
	}
	return reg
}

// Register adds r. Names are unique.
func (reg *Registry) Register(r Rule) error {
	if r == nil {
		return fmt.Errorf("%w: nil rule", ErrInvalidRule)
	}
	if err := r.validate(); err != nil {
		return err
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.rules[r.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRule, r.Name())
	}
	reg.rules[r.Name()] = r
	reg.order = append(reg.order, r.Name())
	return nil
}

// Lookup returns the rule registered under name.
func (reg *Registry) Lookup(name string) (Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rules[name]
	return r, ok
}

// Names returns registered names sorted alphabetically.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	out := append([]string(nil), reg.order...)
	reg.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Rules returns registered rules in registration order.
func (reg *Registry) Rules() []Rule {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Rule, 0, len(reg.order))
	for _, name := range reg.order {
		out = append(out, reg.rules[name])
	}
	return out
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rules)
}
