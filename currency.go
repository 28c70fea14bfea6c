package i18n

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Currency is a template filter that renders a number as a localized
// currency string. It is immutable after construction and safe for
// concurrent use across simultaneous renders.
//
// Each field is resolved per invocation with the same precedence: explicit
// call option, then render-context variable, then the configured default,
// then the system fallback ("en-US" / "USD").
type Currency struct {
	contextLocaleKey string
	contextCodeKey   string
	contextFormatKey string
	defaultLocale    string
	defaultCode      string
	defaultFormat    string
	currencyDigits   bool
	strict           bool
	engine           Engine
}

// CurrencyOption configures a Currency filter during construction.
type CurrencyOption func(*Currency)

// WithCurrencyLocale sets the fallback locale used when neither the call
// nor the render context provides one.
func WithCurrencyLocale(locale string) CurrencyOption {
	return func(c *Currency) {
		c.defaultLocale = locale
	}
}

// WithCurrencyDefaultCode sets the fallback ISO 4217 code.
func WithCurrencyDefaultCode(code string) CurrencyOption {
	return func(c *Currency) {
		c.defaultCode = code
	}
}

// WithCurrencyFormat sets a default number pattern, overriding the
// locale's standard currency pattern.
func WithCurrencyFormat(format string) CurrencyOption {
	return func(c *Currency) {
		c.defaultFormat = format
	}
}

// WithCurrencyContextKeys renames the render-context variables the filter
// reads its locale, currency code and format from.
func WithCurrencyContextKeys(localeKey, codeKey, formatKey string) CurrencyOption {
	return func(c *Currency) {
		if localeKey != "" {
			c.contextLocaleKey = localeKey
		}
		if codeKey != "" {
			c.contextCodeKey = codeKey
		}
		if formatKey != "" {
			c.contextFormatKey = formatKey
		}
	}
}

// WithoutCurrencyDigits stops the currency's own precision from overriding
// the pattern's fraction digits.
func WithoutCurrencyDigits() CurrencyOption {
	return func(c *Currency) {
		c.currencyDigits = false
	}
}

// WithCurrencyStrict escalates uncoercible input to InvalidInputError
// instead of falling back to a zero display.
func WithCurrencyStrict() CurrencyOption {
	return func(c *Currency) {
		c.strict = true
	}
}

// WithCurrencyEngine substitutes the formatting engine.
func WithCurrencyEngine(engine Engine) CurrencyOption {
	return func(c *Currency) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// NewCurrency builds a currency filter. The configured default locale is
// validated eagerly so a setup mistake fails at registration time, not
// mid-render.
func NewCurrency(opts ...CurrencyOption) (*Currency, error) {
	c := &Currency{
		contextLocaleKey: "locale",
		contextCodeKey:   "currency_code",
		contextFormatKey: "currency_format",
		defaultLocale:    "en-US",
		defaultCode:      "USD",
		currencyDigits:   true,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.engine == nil {
		engine, err := defaultEngine()
		if err != nil {
			return nil, err
		}
		c.engine = engine
	}

	if checker, ok := c.engine.(localeChecker); ok && c.defaultLocale != "" {
		if err := checker.CheckLocale(c.defaultLocale); err != nil {
			return nil, &FormattingError{Locale: c.defaultLocale, Err: err}
		}
	}

	return c, nil
}

// Format renders value as a localized currency string.
func (c *Currency) Format(ctx Context, value any, opts ...CallOption) (string, error) {
	call := newCallConfig(opts)

	spec := FormatSpec{
		Locale:         resolveOption(call.locale, ctx, c.contextLocaleKey, c.defaultLocale, "en-US"),
		Currency:       resolveOption(call.currency, ctx, c.contextCodeKey, c.defaultCode, "USD"),
		Pattern:        resolveOption(call.pattern, ctx, c.contextFormatKey, c.defaultFormat, ""),
		GroupSeparator: true,
		CurrencyDigits: c.currencyDigits,
	}
	if call.group != nil {
		spec.GroupSeparator = *call.group
	}

	n, err := coerceFilterValue(c.engine, value, spec.Locale, c.strict)
	if err != nil {
		return "", err
	}

	return c.engine.Format(n, spec)
}

// coerceFilterValue normalizes a filter's left value. Strings go through the
// engine so the resolved locale's separators apply; anything else goes
// straight to the coercer. Uncoercible input degrades to zero unless strict
// mode escalates it. Engine faults (unknown locale) always propagate.
func coerceFilterValue(engine Engine, value any, locale string, strict bool) (decimal.Decimal, error) {
	var (
		n   decimal.Decimal
		err error
	)

	if s, ok := value.(string); ok {
		n, err = engine.Parse(s, locale)
	} else {
		n, err = coerceNumber(value, rootSeparators, false)
	}

	if err == nil {
		return n, nil
	}
	if errors.Is(err, ErrUncoercible) {
		if strict {
			return decimal.Decimal{}, &InvalidInputError{Value: value, Reason: "not a number"}
		}
		return decimal.Zero, nil
	}
	return decimal.Decimal{}, err
}

// Money returns a currency filter with stock defaults, akin to Shopify's
// money filter.
func Money(opts ...CurrencyOption) (*Currency, error) {
	return NewCurrency(opts...)
}

// MoneyWithCurrency renders the amount followed by its ISO code,
// e.g. "$1.99 USD".
func MoneyWithCurrency(opts ...CurrencyOption) (*Currency, error) {
	return NewCurrency(append([]CurrencyOption{WithCurrencyFormat("¤#,##0.00 ¤¤")}, opts...)...)
}

// MoneyWithoutCurrency renders the bare localized amount.
func MoneyWithoutCurrency(opts ...CurrencyOption) (*Currency, error) {
	return NewCurrency(append([]CurrencyOption{WithCurrencyFormat("#,##0.00")}, opts...)...)
}

// MoneyWithoutTrailingZeros drops the fraction entirely, rounding to whole
// units.
func MoneyWithoutTrailingZeros(opts ...CurrencyOption) (*Currency, error) {
	return NewCurrency(append([]CurrencyOption{
		WithCurrencyFormat("¤#,###"),
		WithoutCurrencyDigits(),
	}, opts...)...)
}
