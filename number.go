package i18n

// Number is a template filter that renders a value as a localized decimal
// string, typically registered under the name "decimal". Immutable after
// construction, safe for concurrent use.
type Number struct {
	contextLocaleKey string
	contextFormatKey string
	defaultLocale    string
	defaultFormat    string
	strict           bool
	engine           Engine
}

// NumberOption configures a Number filter during construction.
type NumberOption func(*Number)

// WithNumberLocale sets the fallback locale.
func WithNumberLocale(locale string) NumberOption {
	return func(n *Number) {
		n.defaultLocale = locale
	}
}

// WithNumberFormat sets a default number pattern, overriding the locale's
// standard decimal pattern.
func WithNumberFormat(format string) NumberOption {
	return func(n *Number) {
		n.defaultFormat = format
	}
}

// WithNumberContextKeys renames the render-context variables the filter
// reads its locale and format from.
func WithNumberContextKeys(localeKey, formatKey string) NumberOption {
	return func(n *Number) {
		if localeKey != "" {
			n.contextLocaleKey = localeKey
		}
		if formatKey != "" {
			n.contextFormatKey = formatKey
		}
	}
}

// WithNumberStrict escalates uncoercible input to InvalidInputError.
func WithNumberStrict() NumberOption {
	return func(n *Number) {
		n.strict = true
	}
}

// WithNumberEngine substitutes the formatting engine.
func WithNumberEngine(engine Engine) NumberOption {
	return func(n *Number) {
		if engine != nil {
			n.engine = engine
		}
	}
}

// NewNumber builds a decimal filter, validating the default locale eagerly.
func NewNumber(opts ...NumberOption) (*Number, error) {
	n := &Number{
		contextLocaleKey: "locale",
		contextFormatKey: "decimal_format",
		defaultLocale:    "en-US",
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(n)
	}

	if n.engine == nil {
		engine, err := defaultEngine()
		if err != nil {
			return nil, err
		}
		n.engine = engine
	}

	if checker, ok := n.engine.(localeChecker); ok && n.defaultLocale != "" {
		if err := checker.CheckLocale(n.defaultLocale); err != nil {
			return nil, &FormattingError{Locale: n.defaultLocale, Err: err}
		}
	}

	return n, nil
}

// Format renders value as a localized decimal string.
func (n *Number) Format(ctx Context, value any, opts ...CallOption) (string, error) {
	call := newCallConfig(opts)

	spec := FormatSpec{
		Locale:         resolveOption(call.locale, ctx, n.contextLocaleKey, n.defaultLocale, "en-US"),
		Pattern:        resolveOption(call.pattern, ctx, n.contextFormatKey, n.defaultFormat, ""),
		GroupSeparator: true,
	}
	if call.group != nil {
		spec.GroupSeparator = *call.group
	}

	amount, err := coerceFilterValue(n.engine, value, spec.Locale, n.strict)
	if err != nil {
		return "", err
	}

	return n.engine.Format(amount, spec)
}
