package i18n

// CallOption overrides a filter's configured behavior for a single
// invocation. Call-time options sit at the top of the precedence chain, above
// render-context values and filter defaults.
type CallOption func(*callConfig)

type callConfig struct {
	locale   string
	currency string
	pattern  string
	group    *bool

	msgContext string
	plural     string
	count      any
	vars       map[string]any
}

func newCallConfig(opts []CallOption) callConfig {
	var cfg callConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Locale overrides the resolved locale for this invocation.
func Locale(locale string) CallOption {
	return func(c *callConfig) {
		c.locale = locale
	}
}

// CurrencyCode overrides the resolved ISO 4217 code for this invocation.
func CurrencyCode(code string) CallOption {
	return func(c *callConfig) {
		c.currency = code
	}
}

// Pattern overrides the resolved number pattern for this invocation.
func Pattern(pattern string) CallOption {
	return func(c *callConfig) {
		c.pattern = pattern
	}
}

// GroupSeparator enables or disables digit grouping for this invocation.
// Grouping is on by default.
func GroupSeparator(enabled bool) CallOption {
	return func(c *callConfig) {
		c.group = &enabled
	}
}

// MessageContext disambiguates a translated message, like gettext's pgettext.
func MessageContext(msgContext string) CallOption {
	return func(c *callConfig) {
		c.msgContext = msgContext
	}
}

// Plural supplies the plural form of a translatable message. It takes effect
// together with Count.
func Plural(plural string) CallOption {
	return func(c *callConfig) {
		c.plural = plural
	}
}

// Count supplies the quantity that selects between singular and plural
// variants. Non-numeric counts are ignored.
func Count(count any) CallOption {
	return func(c *callConfig) {
		c.count = count
	}
}

// Var adds an interpolation variable available to message placeholders.
func Var(name string, value any) CallOption {
	return func(c *callConfig) {
		if name == "" {
			return
		}
		if c.vars == nil {
			c.vars = make(map[string]any)
		}
		c.vars[name] = value
	}
}

// Vars adds a batch of interpolation variables.
func Vars(vars map[string]any) CallOption {
	return func(c *callConfig) {
		if len(vars) == 0 {
			return
		}
		if c.vars == nil {
			c.vars = make(map[string]any, len(vars))
		}
		for name, value := range vars {
			c.vars[name] = value
		}
	}
}

// resolveOption applies the per-field precedence chain: explicit call
// argument, then render-context value, then the filter's configured default,
// then the hard-coded system fallback. Resolution is total; it never fails
// and never validates, so a bad locale or currency code surfaces later as a
// FormattingError from the engine rather than being silently replaced here.
func resolveOption(explicit string, ctx Context, contextKey, configured, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if value, ok := resolveString(ctx, contextKey); ok {
		return value
	}
	if configured != "" {
		return configured
	}
	return fallback
}
