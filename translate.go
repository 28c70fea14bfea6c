package i18n

import (
	"fmt"
	"regexp"
	"strconv"
)

// Translations is the object a render context is expected to supply for
// translating message text: the four gettext-style lookups.
type Translations interface {
	Gettext(message string) string
	NGettext(singular, plural string, n int) string
	PGettext(msgContext, message string) string
	NPGettext(msgContext, singular, plural string, n int) string
}

// NullTranslations passes messages through untranslated, with the English
// singular/plural rule.
type NullTranslations struct{}

func (NullTranslations) Gettext(message string) string { return message }

func (NullTranslations) NGettext(singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}

func (NullTranslations) PGettext(_, message string) string { return message }

func (NullTranslations) NPGettext(_, singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// translateMode pins a Translate filter to one gettext lookup. The default
// auto mode picks the lookup from the call options present.
type translateMode int

const (
	modeAuto translateMode = iota
	modeGettext
	modeNGettext
	modePGettext
	modeNPGettext
)

// Translate is a template filter for translating strings. Depending on the
// call options it behaves like gettext, ngettext, pgettext or npgettext.
//
// The Translations object is resolved per invocation: a render-context
// variable ("translations" by default) wins; otherwise, when a Store is
// configured, the locale is resolved with the usual precedence and the store
// is consulted along its fallback chain; the configured fallback
// (NullTranslations by default) covers the rest.
type Translate struct {
	mode             translateMode
	contextVar       string
	contextLocaleKey string
	defaultLocale    string
	fallback         Translations
	store            Store
	resolver         FallbackResolver
	interpolate      bool
}

// TranslateOption configures a Translate filter during construction.
type TranslateOption func(*Translate)

// WithTranslationsVar renames the render-context variable holding the
// Translations object.
func WithTranslationsVar(name string) TranslateOption {
	return func(t *Translate) {
		if name != "" {
			t.contextVar = name
		}
	}
}

// WithTranslateLocale sets the fallback locale for store-backed lookups.
func WithTranslateLocale(locale string) TranslateOption {
	return func(t *Translate) {
		t.defaultLocale = locale
	}
}

// WithDefaultTranslations sets the Translations used when neither the
// context nor a store can supply one.
func WithDefaultTranslations(translations Translations) TranslateOption {
	return func(t *Translate) {
		if translations != nil {
			t.fallback = translations
		}
	}
}

// WithTranslateStore backs the filter with a catalog store.
func WithTranslateStore(store Store) TranslateOption {
	return func(t *Translate) {
		t.store = store
	}
}

// WithTranslateFallbackResolver sets the locale fallback chain used for
// store lookups.
func WithTranslateFallbackResolver(resolver FallbackResolver) TranslateOption {
	return func(t *Translate) {
		t.resolver = resolver
	}
}

// WithoutInterpolation disables `{name}` placeholder substitution.
func WithoutInterpolation() TranslateOption {
	return func(t *Translate) {
		t.interpolate = false
	}
}

func NewTranslate(opts ...TranslateOption) *Translate {
	t := &Translate{
		contextVar:       "translations",
		contextLocaleKey: "locale",
		fallback:         NullTranslations{},
		interpolate:      true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Format translates value. Plural and Count options switch to plural-forms
// lookup; MessageContext qualifies the message id; Var/Vars feed placeholder
// interpolation. Count, when present, is always available to placeholders as
// {count}.
func (t *Translate) Format(ctx Context, value any, opts ...CallOption) (string, error) {
	call := newCallConfig(opts)
	message := softString(value)

	translations := t.resolveTranslations(ctx, call)

	count, hasCount := countArg(call.count)
	plural := call.plural
	if plural == "" {
		plural = message
	}
	if !hasCount {
		count = 1
	}

	var text string
	mode := t.effectiveMode(call, hasCount)
	switch mode {
	case modeNPGettext:
		text = translations.NPGettext(call.msgContext, message, plural, count)
	case modeNGettext:
		text = translations.NGettext(message, plural, count)
	case modePGettext:
		text = translations.PGettext(call.msgContext, message)
	default:
		text = translations.Gettext(message)
	}

	if mode == modeNGettext || mode == modeNPGettext {
		hasCount = true
	}

	if !t.interpolate {
		return text, nil
	}

	vars := call.vars
	if hasCount {
		if vars == nil {
			vars = map[string]any{"count": count}
		} else {
			if _, ok := vars["count"]; !ok {
				vars["count"] = count
			}
		}
	}
	return interpolateMessage(text, vars)
}

func (t *Translate) effectiveMode(call callConfig, hasCount bool) translateMode {
	if t.mode != modeAuto {
		return t.mode
	}
	switch {
	case call.plural != "" && hasCount && call.msgContext != "":
		return modeNPGettext
	case call.plural != "" && hasCount:
		return modeNGettext
	case call.msgContext != "":
		return modePGettext
	default:
		return modeGettext
	}
}

// GetText is a Translate variant pinned to plain gettext lookup; plural and
// message-context call options do not change the lookup.
func GetText(opts ...TranslateOption) *Translate {
	t := NewTranslate(opts...)
	t.mode = modeGettext
	return t
}

// NGetText is pinned to plural lookup. Without a Count option the count
// defaults to one.
func NGetText(opts ...TranslateOption) *Translate {
	t := NewTranslate(opts...)
	t.mode = modeNGettext
	return t
}

// PGetText is pinned to message-context lookup.
func PGetText(opts ...TranslateOption) *Translate {
	t := NewTranslate(opts...)
	t.mode = modePGettext
	return t
}

// NPGetText is pinned to plural lookup within a message context.
func NPGetText(opts ...TranslateOption) *Translate {
	t := NewTranslate(opts...)
	t.mode = modeNPGettext
	return t
}

func (t *Translate) resolveTranslations(ctx Context, call callConfig) Translations {
	if ctx != nil {
		if value, ok := ctx.Resolve(t.contextVar); ok {
			if translations, ok := value.(Translations); ok {
				return translations
			}
		}
	}

	if t.store != nil {
		locale := resolveOption(call.locale, ctx, t.contextLocaleKey, t.defaultLocale, "en-US")
		return NewStoreTranslations(t.store, t.resolver, locale)
	}

	return t.fallback
}

// interpolateMessage substitutes `{name}` placeholders from vars. A
// placeholder with no matching variable fails the invocation; messages
// without placeholders never do.
func interpolateMessage(text string, vars map[string]any) (string, error) {
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := vars[name]; ok {
			return fmt.Sprintf("%v", value)
		}
		if missing == "" {
			missing = name
		}
		return match
	})

	if missing != "" {
		return "", &TranslationError{Key: missing, Err: ErrMissingVariable}
	}
	return out, nil
}

func softString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// countArg reads a plural count from a call option value. Booleans and nil
// do not count; strings are parsed; fractional floats truncate.
func countArg(value any) (int, bool) {
	switch v := value.(type) {
	case nil, bool:
		return 0, false
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
