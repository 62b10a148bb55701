package config

import (
	"fmt"
	"sync"

	"github.com/chainkit/chainkit/chain"
)

// Factory produces an interceptor for one built chain. Builds call the
// factory once per chain, so stateful interceptors (e.g. the transport,
// which tracks its in-flight request for cancellation) are not shared
// between chains. A factory may still close over shared state on purpose,
// like a response cache.
type Factory func() chain.Interceptor

// Static returns a factory that always yields the same interceptor. Use it
// for stateless interceptors or deliberately shared ones.
func Static(ic chain.Interceptor) Factory {
	return func() chain.Interceptor { return ic }
}

// Registry maps interceptor names to factories. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty interceptor registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given name. Overwrites any existing
// registration.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[name] = f
}

// Get returns the factory for name, or nil and false if not found.
func (r *Registry) Get(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// MustGet returns the factory for name, or panics if not found.
func (r *Registry) MustGet(name string) Factory {
	f, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("config: interceptor %q not registered", name))
	}
	return f
}

// Names returns all registered interceptor names (unordered).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	return names
}
