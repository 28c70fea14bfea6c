package i18n

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed testdata/default_conventions.json
var defaultConventionsJSON []byte

// Conventions holds the locale-specific formatting data the standard engine
// renders with: separators, grouping size, and the standard decimal and
// currency patterns.
type Conventions struct {
	Locale          string            `json:"locale"`
	DecimalSep      string            `json:"decimal_separator"`
	GroupSep        string            `json:"group_separator"`
	GroupSize       int               `json:"group_size,omitempty"`
	DecimalPattern  string            `json:"decimal_pattern"`
	CurrencyPattern string            `json:"currency_pattern"`
	CurrencySymbols map[string]string `json:"currency_symbols,omitempty"`
}

func (c *Conventions) decimalSeparator() string {
	if c == nil || c.DecimalSep == "" {
		return "."
	}
	return c.DecimalSep
}

func (c *Conventions) groupSeparator() string {
	if c == nil || c.GroupSep == "" {
		return ","
	}
	return c.GroupSep
}

func (c *Conventions) groupSize() int {
	if c == nil || c.GroupSize <= 0 {
		return 3
	}
	return c.GroupSize
}

func (c *Conventions) decimalPattern() string {
	if c == nil || c.DecimalPattern == "" {
		return "#,##0.###"
	}
	return c.DecimalPattern
}

func (c *Conventions) currencyPattern() string {
	if c == nil || c.CurrencyPattern == "" {
		return "¤#,##0.00"
	}
	return c.CurrencyPattern
}

func (c *Conventions) clone() *Conventions {
	if c == nil {
		return nil
	}
	out := *c
	if len(c.CurrencySymbols) > 0 {
		out.CurrencySymbols = make(map[string]string, len(c.CurrencySymbols))
		for code, symbol := range c.CurrencySymbols {
			out.CurrencySymbols[code] = symbol
		}
	}
	return &out
}

// ConventionsData is the on-disk shape of a conventions file: a default
// locale plus per-locale entries.
type ConventionsData struct {
	DefaultLocale string                 `json:"default_locale"`
	Locales       map[string]Conventions `json:"locales"`
}

// ConventionsLoader hydrates ConventionsData from the embedded defaults, an
// optional user-provided file, and per-locale override files. User data wins
// over the embedded defaults; overrides win over both.
type ConventionsLoader struct {
	path      string
	overrides map[string]string
}

// NewConventionsLoader creates a loader. path may be empty, in which case
// only the embedded defaults (plus any overrides) are used.
func NewConventionsLoader(path string) *ConventionsLoader {
	return &ConventionsLoader{
		path:      path,
		overrides: make(map[string]string),
	}
}

// AddOverride points a single locale at its own conventions file.
func (l *ConventionsLoader) AddOverride(locale, path string) {
	if l == nil || locale == "" || path == "" {
		return
	}
	l.overrides[normalizeLocale(locale)] = path
}

func (l *ConventionsLoader) Load() (*ConventionsData, error) {
	var data ConventionsData
	if err := json.Unmarshal(defaultConventionsJSON, &data); err != nil {
		return nil, fmt.Errorf("i18n: parse embedded conventions: %w", err)
	}

	if l.path != "" {
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read conventions %s: %w", l.path, err)
		}
		var user ConventionsData
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("i18n: parse conventions %s: %w", l.path, err)
		}
		mergeConventionsData(&data, &user)
	}

	for locale, path := range l.overrides {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read conventions override %s: %w", path, err)
		}
		var conv Conventions
		if err := json.Unmarshal(raw, &conv); err != nil {
			return nil, fmt.Errorf("i18n: parse conventions override %s: %w", path, err)
		}
		if conv.Locale == "" {
			conv.Locale = locale
		}
		data.Locales[locale] = conv
	}

	return &data, nil
}

func mergeConventionsData(base, user *ConventionsData) {
	if user.DefaultLocale != "" {
		base.DefaultLocale = user.DefaultLocale
	}
	if base.Locales == nil {
		base.Locales = make(map[string]Conventions, len(user.Locales))
	}
	for locale, conv := range user.Locales {
		base.Locales[normalizeLocale(locale)] = conv
	}
}

// conventionsProvider resolves Conventions for a locale, walking the
// configured fallback chain and then the CLDR parent chain before giving up.
type conventionsProvider struct {
	data     map[string]*Conventions
	resolver FallbackResolver
}

func newConventionsProvider(data *ConventionsData, resolver FallbackResolver) *conventionsProvider {
	provider := &conventionsProvider{
		data:     make(map[string]*Conventions),
		resolver: resolver,
	}
	if data != nil {
		for locale, conv := range data.Locales {
			entry := conv
			if entry.Locale == "" {
				entry.Locale = locale
			}
			provider.data[normalizeLocale(locale)] = &entry
		}
	}
	return provider
}

// Get returns the conventions for locale or nil when nothing in the chain
// matches. The chain is: exact locale, fallback-resolver entries, then the
// locale's parent chain (de-AT falls back to de).
func (p *conventionsProvider) Get(locale string) *Conventions {
	if p == nil {
		return nil
	}

	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil
	}

	if conv, ok := p.data[normalized]; ok {
		return conv
	}

	if p.resolver != nil {
		for _, candidate := range p.resolver.Resolve(normalized) {
			if conv, ok := p.data[normalizeLocale(candidate)]; ok {
				return conv
			}
		}
	}

	for _, parent := range localeParentChain(normalized) {
		if conv, ok := p.data[parent]; ok {
			return conv
		}
	}

	return nil
}
