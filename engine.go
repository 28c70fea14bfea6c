package i18n

import (
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// FormatSpec carries the options a filter resolved for one invocation: the
// effective locale, an optional explicit pattern, and kind-specific
// parameters. An empty Currency means plain decimal formatting.
type FormatSpec struct {
	Locale         string
	Pattern        string
	Currency       string
	GroupSeparator bool
	CurrencyDigits bool
}

// Engine is the locale-formatting boundary the filters delegate to. Format
// renders a canonical number as a localized display string; Parse reads a
// localized numeric string back into canonical form. Faults surface as
// *FormattingError; Parse additionally reports ErrUncoercible for input that
// simply is not a number.
type Engine interface {
	Format(value decimal.Decimal, spec FormatSpec) (string, error)
	Parse(input, locale string) (decimal.Decimal, error)
}

// localeChecker is implemented by engines that can validate a locale ahead
// of time, letting filter constructors reject a bad default locale eagerly.
type localeChecker interface {
	CheckLocale(locale string) error
}

// currencySymbolTable maps common ISO 4217 codes to their display symbols.
// Codes missing here render as the code itself.
var currencySymbolTable = map[string]string{
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"RUB": "₽",
	"BRL": "R$",
	"AUD": "A$",
	"CAD": "CA$",
	"MXN": "MX$",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"TRY": "₺",
	"THB": "฿",
	"VND": "₫",
	"ILS": "₪",
	"PHP": "₱",
	"UAH": "₴",
}

// StandardEngine renders with the conventions table: embedded per-locale
// defaults, optionally extended or overridden through a ConventionsLoader.
type StandardEngine struct {
	conventions *conventionsProvider
	symbols     map[string]string
}

// StandardEngineOption configures a StandardEngine during construction.
type StandardEngineOption func(*standardEngineConfig)

type standardEngineConfig struct {
	data     *ConventionsData
	resolver FallbackResolver
	symbols  map[string]string
}

// WithConventionsData supplies conventions, replacing the embedded defaults.
func WithConventionsData(data *ConventionsData) StandardEngineOption {
	return func(cfg *standardEngineConfig) {
		cfg.data = data
	}
}

// WithEngineFallbackResolver sets the resolver consulted when a locale has
// no conventions entry of its own.
func WithEngineFallbackResolver(resolver FallbackResolver) StandardEngineOption {
	return func(cfg *standardEngineConfig) {
		cfg.resolver = resolver
	}
}

// WithCurrencySymbol registers or replaces the display symbol for a code.
func WithCurrencySymbol(code, symbol string) StandardEngineOption {
	return func(cfg *standardEngineConfig) {
		if code == "" || symbol == "" {
			return
		}
		if cfg.symbols == nil {
			cfg.symbols = make(map[string]string)
		}
		cfg.symbols[code] = symbol
	}
}

// NewStandardEngine builds the default pattern-rendering engine.
func NewStandardEngine(opts ...StandardEngineOption) (*StandardEngine, error) {
	var cfg standardEngineConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	data := cfg.data
	if data == nil {
		loaded, err := NewConventionsLoader("").Load()
		if err != nil {
			return nil, err
		}
		data = loaded
	}

	symbols := currencySymbolTable
	if len(cfg.symbols) > 0 {
		symbols = make(map[string]string, len(currencySymbolTable)+len(cfg.symbols))
		for code, symbol := range currencySymbolTable {
			symbols[code] = symbol
		}
		for code, symbol := range cfg.symbols {
			symbols[code] = symbol
		}
	}

	return &StandardEngine{
		conventions: newConventionsProvider(data, cfg.resolver),
		symbols:     symbols,
	}, nil
}

var (
	defaultEngineOnce sync.Once
	defaultEngineVal  *StandardEngine
	defaultEngineErr  error
)

// defaultEngine returns the shared embedded-data engine used when a filter
// is constructed without an explicit one.
func defaultEngine() (*StandardEngine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngineVal, defaultEngineErr = NewStandardEngine()
	})
	return defaultEngineVal, defaultEngineErr
}

func (e *StandardEngine) Format(value decimal.Decimal, spec FormatSpec) (string, error) {
	conv, err := e.lookup(spec.Locale)
	if err != nil {
		return "", &FormattingError{Locale: spec.Locale, Currency: spec.Currency, Err: err}
	}
	return renderSpec(value, spec, conv, e.symbols)
}

func (e *StandardEngine) Parse(input, locale string) (decimal.Decimal, error) {
	conv, err := e.lookup(locale)
	if err != nil {
		return decimal.Decimal{}, &FormattingError{Locale: locale, Err: err}
	}

	sep := separators{
		decimal: firstRune(conv.decimalSeparator(), '.'),
		group:   firstRune(conv.groupSeparator(), ','),
	}
	return parseNumeric(input, sep, false)
}

// CheckLocale reports whether the engine has formatting data reachable for
// the locale, walking the same fallback chain Format uses.
func (e *StandardEngine) CheckLocale(locale string) error {
	_, err := e.lookup(locale)
	return err
}

func (e *StandardEngine) lookup(locale string) (*Conventions, error) {
	if locale == "" {
		return nil, ErrUnknownLocale
	}
	if _, err := language.Parse(normalizeLocale(locale)); err != nil {
		return nil, ErrUnknownLocale
	}
	conv := e.conventions.Get(locale)
	if conv == nil {
		return nil, ErrUnknownLocale
	}
	return conv, nil
}

// renderSpec is the shared format path: it resolves currency precision and
// symbols, picks the effective pattern, and renders. Unknown-but-well-formed
// currency codes are not an error; they display as the code itself, matching
// permissive template semantics.
func renderSpec(value decimal.Decimal, spec FormatSpec, conv *Conventions, symbols map[string]string) (string, error) {
	patternSrc := spec.Pattern
	fracDigits := -1

	var sym currencySymbols
	if spec.Currency != "" {
		sym = resolveCurrencySymbols(spec.Currency, conv, symbols)
		if spec.CurrencyDigits {
			fracDigits = currencyScale(spec.Currency)
		}
		if patternSrc == "" {
			patternSrc = conv.currencyPattern()
		}
	} else if patternSrc == "" {
		patternSrc = conv.decimalPattern()
	}

	pat, err := parsePattern(patternSrc)
	if err != nil {
		return "", &FormattingError{
			Locale:   spec.Locale,
			Pattern:  patternSrc,
			Currency: spec.Currency,
			Err:      ErrBadPattern,
		}
	}

	return pat.render(value, conv, sym, spec.GroupSeparator, fracDigits), nil
}

func resolveCurrencySymbols(code string, conv *Conventions, symbols map[string]string) currencySymbols {
	sym := currencySymbols{symbol: code, code: code}

	if unit, err := currency.ParseISO(code); err == nil && unit.String() != "XXX" {
		sym.code = unit.String()
		sym.symbol = sym.code
	}

	if conv != nil {
		if symbol, ok := conv.CurrencySymbols[sym.code]; ok {
			sym.symbol = symbol
			return sym
		}
	}
	if symbol, ok := symbols[sym.code]; ok {
		sym.symbol = symbol
	}
	return sym
}

// currencyScale returns the fraction digits for a currency, 2 when the code
// is not a known ISO 4217 unit.
func currencyScale(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
