package i18n

// FilterBinder is the registration interface a host template engine exposes:
// a way to attach a named filter callable. The engine's own registry,
// parsing and execution machinery stay on its side of this boundary.
type FilterBinder interface {
	AddFilter(name string, fn any) error
}

// RegisterFilters attaches every filter in the registry to the host engine,
// bound to the given render context.
func RegisterFilters(binder FilterBinder, registry *Registry, ctx Context) error {
	if binder == nil || registry == nil {
		return nil
	}

	for name, fn := range registry.Bind(ctx) {
		if err := binder.AddFilter(name, fn); err != nil {
			return err
		}
	}
	return nil
}
