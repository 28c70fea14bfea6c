package i18n

import "errors"

// Config captures shared filter setup: the default locale and currency, the
// formatting engine, and the optional translation catalogs.
type Config struct {
	DefaultLocale   string
	DefaultCurrency string
	Engine          Engine
	Loader          Loader
	Store           Store
	Resolver        FallbackResolver
	Hooks           []FilterHook

	locales              []string
	conventionsPath      string
	conventionsOverrides map[string]string
	strict               bool
	useXText             bool
	translationsVar      string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		DefaultLocale:   "en-US",
		DefaultCurrency: "USD",
		translationsVar: "translations",
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	cfg.locales = normalizeLocales(cfg.locales)

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Engine == nil {
		engine, err := cfg.buildEngine()
		if err != nil {
			return nil, err
		}
		cfg.Engine = engine
	}

	if cfg.Store == nil && cfg.Loader != nil && len(cfg.locales) > 0 {
		store, err := NewStaticStoreFromLoader(cfg.Loader, cfg.locales...)
		if err != nil {
			return nil, err
		}
		cfg.Store = store
	}

	return cfg, nil
}

func (cfg *Config) buildEngine() (Engine, error) {
	if cfg.useXText {
		return NewXTextEngine(), nil
	}

	loader := NewConventionsLoader(cfg.conventionsPath)
	for locale, path := range cfg.conventionsOverrides {
		loader.AddOverride(locale, path)
	}
	data, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStandardEngine(
		WithConventionsData(data),
		WithEngineFallbackResolver(cfg.Resolver),
	)
}

// WithDefaultLocale sets the locale used when neither a call argument nor
// the render context supplies one.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		if locale != "" {
			c.DefaultLocale = locale
		}
		return nil
	}
}

// WithDefaultCurrency sets the ISO 4217 code used when neither a call
// argument nor the render context supplies one.
func WithDefaultCurrency(code string) Option {
	return func(c *Config) error {
		if code != "" {
			c.DefaultCurrency = code
		}
		return nil
	}
}

// WithLocales registers the locales to load translation catalogs for.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.locales = append(c.locales, locales...)
		return nil
	}
}

// WithEngine replaces the formatting engine for every filter built from this
// config.
func WithEngine(engine Engine) Option {
	return func(c *Config) error {
		c.Engine = engine
		return nil
	}
}

// WithXTextEngine formats with CLDR data probed from golang.org/x/text
// instead of the embedded conventions table.
func WithXTextEngine() Option {
	return func(c *Config) error {
		c.useXText = true
		return nil
	}
}

// WithConventions points the standard engine at a conventions file that
// extends or overrides the embedded defaults.
func WithConventions(path string) Option {
	return func(c *Config) error {
		c.conventionsPath = path
		return nil
	}
}

// WithConventionsOverride points a single locale at its own conventions file.
func WithConventionsOverride(locale, path string) Option {
	return func(c *Config) error {
		if locale == "" || path == "" {
			return nil
		}
		if c.conventionsOverrides == nil {
			c.conventionsOverrides = make(map[string]string)
		}
		c.conventionsOverrides[locale] = path
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithFilterHooks installs hooks on the registry built from this config.
func WithFilterHooks(hooks ...FilterHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithStrictCoercion makes uncoercible filter input an error instead of
// formatting as zero.
func WithStrictCoercion() Option {
	return func(c *Config) error {
		c.strict = true
		return nil
	}
}

// WithTranslationsContextVar renames the render-context variable the
// translate filter reads its Translations object from.
func WithTranslationsContextVar(name string) Option {
	return func(c *Config) error {
		if name != "" {
			c.translationsVar = name
		}
		return nil
	}
}

// Registry builds the standard filter set: currency and its money variants,
// the decimal filter, and the translate filter under both "translate" and
// "t".
func (cfg *Config) Registry() (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("i18n: nil config")
	}

	currencyOpts := []CurrencyOption{
		WithCurrencyLocale(cfg.DefaultLocale),
		WithCurrencyDefaultCode(cfg.DefaultCurrency),
		WithCurrencyEngine(cfg.Engine),
	}
	if cfg.strict {
		currencyOpts = append(currencyOpts, WithCurrencyStrict())
	}

	numberOpts := []NumberOption{
		WithNumberLocale(cfg.DefaultLocale),
		WithNumberEngine(cfg.Engine),
	}
	if cfg.strict {
		numberOpts = append(numberOpts, WithNumberStrict())
	}

	currencyFilter, err := NewCurrency(currencyOpts...)
	if err != nil {
		return nil, err
	}
	money, err := Money(currencyOpts...)
	if err != nil {
		return nil, err
	}
	moneyWithCurrency, err := MoneyWithCurrency(currencyOpts...)
	if err != nil {
		return nil, err
	}
	moneyWithoutCurrency, err := MoneyWithoutCurrency(currencyOpts...)
	if err != nil {
		return nil, err
	}
	moneyBare, err := MoneyWithoutTrailingZeros(currencyOpts...)
	if err != nil {
		return nil, err
	}
	numberFilter, err := NewNumber(numberOpts...)
	if err != nil {
		return nil, err
	}

	translateOpts := []TranslateOption{
		WithTranslationsVar(cfg.translationsVar),
		WithTranslateLocale(cfg.DefaultLocale),
		WithTranslateStore(cfg.Store),
		WithTranslateFallbackResolver(cfg.Resolver),
	}
	translate := NewTranslate(translateOpts...)

	registry := NewRegistry(WithRegistryHooks(cfg.Hooks...))
	registry.Register("currency", currencyFilter)
	registry.Register("money", money)
	registry.Register("money_with_currency", moneyWithCurrency)
	registry.Register("money_without_currency", moneyWithoutCurrency)
	registry.Register("money_without_trailing_zeros", moneyBare)
	registry.Register("decimal", numberFilter)
	registry.Register("translate", translate)
	registry.Register("t", translate)
	registry.Register("gettext", GetText(translateOpts...))
	registry.Register("ngettext", NGetText(translateOpts...))
	registry.Register("pgettext", PGetText(translateOpts...))
	registry.Register("npgettext", NPGetText(translateOpts...))

	return registry, nil
}
