package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// msgContextGlue joins a message context and a message id into one catalog
// key, following the gettext convention.
const msgContextGlue = "\x04"

// pluralForms maps catalog category names to CLDR plural forms.
var pluralForms = map[string]plural.Form{
	"zero":  plural.Zero,
	"one":   plural.One,
	"two":   plural.Two,
	"few":   plural.Few,
	"many":  plural.Many,
	"other": plural.Other,
}

// MessageEntry is one translated message: the default text plus optional
// per-plural-form variants.
type MessageEntry struct {
	Other string
	Forms map[plural.Form]string
}

// Catalog is an immutable set of translated messages for a single locale,
// keyed by message id (optionally qualified by a message context). It
// implements Translations; plural selection uses the locale's CLDR cardinal
// rules.
type Catalog struct {
	locale  string
	tag     language.Tag
	entries map[string]MessageEntry
}

func NewCatalog(locale string, entries map[string]MessageEntry) (*Catalog, error) {
	normalized := normalizeLocale(locale)
	tag, err := language.Parse(normalized)
	if err != nil {
		return nil, ErrUnknownLocale
	}

	copied := make(map[string]MessageEntry, len(entries))
	for key, entry := range entries {
		if len(entry.Forms) > 0 {
			forms := make(map[plural.Form]string, len(entry.Forms))
			for form, text := range entry.Forms {
				forms[form] = text
			}
			entry.Forms = forms
		}
		copied[key] = entry
	}

	return &Catalog{locale: normalized, tag: tag, entries: copied}, nil
}

func (c *Catalog) Locale() string { return c.locale }

func (c *Catalog) Gettext(message string) string {
	if text, ok := c.lookupText(message); ok {
		return text
	}
	return message
}

func (c *Catalog) NGettext(singular, pluralMsg string, n int) string {
	if text, ok := c.lookupPlural(singular, n); ok {
		return text
	}
	if n == 1 {
		return singular
	}
	return pluralMsg
}

func (c *Catalog) PGettext(msgContext, message string) string {
	if text, ok := c.lookupText(msgContext + msgContextGlue + message); ok {
		return text
	}
	return message
}

func (c *Catalog) NPGettext(msgContext, singular, pluralMsg string, n int) string {
	if text, ok := c.lookupPlural(msgContext+msgContextGlue+singular, n); ok {
		return text
	}
	if n == 1 {
		return singular
	}
	return pluralMsg
}

func (c *Catalog) lookupText(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	entry, ok := c.entries[key]
	if !ok || entry.Other == "" {
		return "", false
	}
	return entry.Other, true
}

func (c *Catalog) lookupPlural(key string, n int) (string, bool) {
	if c == nil {
		return "", false
	}
	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}

	form := matchCardinal(c.tag, n)
	if text, ok := entry.Forms[form]; ok && text != "" {
		return text, true
	}
	if entry.Other != "" {
		return entry.Other, true
	}
	return "", false
}

func matchCardinal(tag language.Tag, n int) plural.Form {
	if n < 0 {
		n = -n
	}
	return plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0)
}
