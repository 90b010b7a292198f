package rule

import (
	"slices"
	"sync"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Factory builds a configured rule. options may be nil, in which case defaults apply.
type Factory func(label string, options map[string]any) (Rule, error)

// Registry maps rule names to factories.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry returns a registry holding every bundled rule.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	_ = registry.Register(SqueezeRuleName, NewSqueezeRule)
	_ = registry.Register(StopLossRuleName, NewStopLossRule)
	_ = registry.Register(RSIPanicRuleName, NewRSIPanicRule)

	return registry
}

func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.Newf(errors.ErrCodeRuleAlreadyExists, "rule %s already registered", name)
	}

	r.factories[name] = factory

	return nil
}

// Build creates the rule registered under name. The label defaults to the name.
func (r *Registry) Build(name string, label string, options map[string]any) (Rule, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrCodeRuleNotFound, "rule %s not found", name)
	}

	if label == "" {
		label = name
	}

	return factory(label, options)
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
