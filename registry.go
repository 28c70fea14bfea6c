package i18n

import (
	"fmt"
	"sort"
	"sync"
)

// Filter is the invocation surface shared by every formatting filter: one
// positional value plus optional call options, returning the display string.
type Filter interface {
	Format(ctx Context, value any, opts ...CallOption) (string, error)
}

// FilterFunc adapts a bare function to the Filter interface.
type FilterFunc func(ctx Context, value any, opts ...CallOption) (string, error)

func (fn FilterFunc) Format(ctx Context, value any, opts ...CallOption) (string, error) {
	return fn(ctx, value, opts...)
}

// Registry holds named filters ready to hand to a template environment.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
	hooks   []FilterHook
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry)

// WithRegistryHooks installs hooks that observe every invocation made
// through the registry.
func WithRegistryHooks(hooks ...FilterHook) RegistryOption {
	return func(r *Registry) {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			r.hooks = append(r.hooks, hook)
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{filters: make(map[string]Filter)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register sets or replaces the filter registered under name.
func (r *Registry) Register(name string, filter Filter) {
	if name == "" || filter == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.filters == nil {
		r.filters = make(map[string]Filter)
	}
	r.filters[name] = filter
}

// Filter returns the filter registered under name.
func (r *Registry) Filter(name string) (Filter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter, ok := r.filters[name]
	return filter, ok
}

// Names returns the registered filter names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format invokes the named filter, running it through the hook chain.
func (r *Registry) Format(name string, ctx Context, value any, opts ...CallOption) (string, error) {
	filter, ok := r.Filter(name)
	if !ok {
		return "", fmt.Errorf("i18n: no filter registered as %q", name)
	}

	r.mu.RLock()
	hooks := r.hooks
	r.mu.RUnlock()

	if len(hooks) == 0 {
		return filter.Format(ctx, value, opts...)
	}

	ev := &FilterEvent{Filter: name, Value: value}
	for _, hook := range hooks {
		hook.BeforeFormat(ev)
	}

	ev.Result, ev.Err = filter.Format(ctx, ev.Value, opts...)

	for _, hook := range hooks {
		hook.AfterFormat(ev)
	}
	return ev.Result, ev.Err
}

// Bind returns the registry's filters as closures over ctx, in the shape
// func(value, opts...) (string, error) that func-map style template engines
// accept.
func (r *Registry) Bind(ctx Context) map[string]any {
	bound := make(map[string]any, len(r.filters))
	for _, name := range r.Names() {
		name := name
		bound[name] = func(value any, opts ...CallOption) (string, error) {
			return r.Format(name, ctx, value, opts...)
		}
	}
	return bound
}
