package strategies

import (
	"fmt"
	"sort"
)

// Registry holds the available ranking strategies by name
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty strategy registry
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register adds a strategy to the registry
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Name()] = s
}

// Get returns the strategy registered under name
func (r *Registry) Get(name string) (Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown ranking strategy: %q", name)
	}
	return s, nil
}

// Names returns the registered strategy names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry holds the strategies registered on import
var DefaultRegistry = NewRegistry()

// takeTop truncates the ranked slice to at most topN entries.
// Catalogs smaller than topN return everything, no padding.
func takeTop(ranked []RankedPlan, topN int) []RankedPlan {
	if topN > 0 && len(ranked) > topN {
		return ranked[:topN]
	}
	return ranked
}
