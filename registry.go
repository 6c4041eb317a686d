package fieldvalidation

import (
	"sort"
	"sync"
)

// Registry maps field types to rulesets. Registering a type replaces its
// ruleset entirely; there is no merging with the previous rules. A Registry
// is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	sets map[FieldType]RuleSet
}

// NewRegistry returns a registry preloaded with the built-in rulesets.
func NewRegistry() *Registry {
	r := &Registry{sets: make(map[FieldType]RuleSet, len(builtins))}
	for t, rs := range builtins {
		r.sets[t] = rs
	}
	return r
}

// Register sets the ruleset used for t.
func (r *Registry) Register(t FieldType, rs RuleSet) {
	r.mu.Lock()
	r.sets[t] = rs
	r.mu.Unlock()
}

// RulesFor returns the ruleset for t. Unknown types get the empty ruleset,
// the same as [Text].
func (r *Registry) RulesFor(t FieldType) RuleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sets[t]
}

// Types returns every registered field type, sorted.
func (r *Registry) Types() []FieldType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]FieldType, 0, len(r.sets))
	for t := range r.sets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by [RulesFor].
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RulesFor returns the ruleset for t from the default registry.
func RulesFor(t FieldType) RuleSet {
	return defaultRegistry.RulesFor(t)
}
