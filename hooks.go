package i18n

// FilterEvent carries one filter invocation through the hook chain. Before
// hooks may adjust Value; after hooks may adjust Result or Err.
type FilterEvent struct {
	Filter   string
	Value    any
	Result   string
	Err      error
	Metadata map[string]any
}

func (ev *FilterEvent) ensureMetadata() {
	if ev.Metadata == nil {
		ev.Metadata = make(map[string]any)
	}
}

// SetMetadata attaches host-defined data to the event.
func (ev *FilterEvent) SetMetadata(key string, value any) {
	if ev == nil || key == "" {
		return
	}
	ev.ensureMetadata()
	ev.Metadata[key] = value
}

// MetadataValue reads host-defined data from the event.
func (ev *FilterEvent) MetadataValue(key string) (any, bool) {
	if ev == nil || ev.Metadata == nil {
		return nil, false
	}
	value, ok := ev.Metadata[key]
	return value, ok
}

// FilterHook observes filter invocations. Hosts use hooks for concerns the
// library deliberately leaves out, such as logging or metrics.
type FilterHook interface {
	BeforeFormat(ev *FilterEvent)
	AfterFormat(ev *FilterEvent)
}

// FilterHookFuncs adapts bare functions to the FilterHook interface.
type FilterHookFuncs struct {
	Before func(ev *FilterEvent)
	After  func(ev *FilterEvent)
}

func (h FilterHookFuncs) BeforeFormat(ev *FilterEvent) {
	if h.Before != nil {
		h.Before(ev)
	}
}

func (h FilterHookFuncs) AfterFormat(ev *FilterEvent) {
	if h.After != nil {
		h.After(ev)
	}
}
