package i18n

import (
	"sort"
	"sync"
)

// Store hands out message catalogs by locale.
type Store interface {
	Catalog(locale string) (*Catalog, bool)
	Locales() []string
}

// StaticStore is an in-memory Store fed with pre-built catalogs.
type StaticStore struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

func NewStaticStore(catalogs ...*Catalog) *StaticStore {
	store := &StaticStore{catalogs: make(map[string]*Catalog)}
	for _, catalog := range catalogs {
		store.Add(catalog)
	}
	return store
}

// NewStaticStoreFromLoader loads the given locales eagerly. A locale the
// loader cannot supply fails the whole call.
func NewStaticStoreFromLoader(loader Loader, locales ...string) (*StaticStore, error) {
	store := NewStaticStore()
	for _, locale := range locales {
		catalog, err := loader.Load(locale)
		if err != nil {
			return nil, err
		}
		store.Add(catalog)
	}
	return store, nil
}

// Add registers a catalog under its own locale, replacing any previous one.
func (s *StaticStore) Add(catalog *Catalog) {
	if s == nil || catalog == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalogs == nil {
		s.catalogs = make(map[string]*Catalog)
	}
	s.catalogs[catalog.Locale()] = catalog
}

func (s *StaticStore) Catalog(locale string) (*Catalog, bool) {
	if s == nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog, ok := s.catalogs[normalizeLocale(locale)]
	return catalog, ok
}

func (s *StaticStore) Locales() []string {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	locales := make([]string, 0, len(s.catalogs))
	for locale := range s.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// StoreTranslations adapts a Store to the Translations interface for one
// resolved locale, consulting catalogs along the locale's fallback chain.
// The chain is the locale itself, then any configured fallbacks, then the
// locale's BCP 47 parents.
type StoreTranslations struct {
	store Store
	chain []string
}

func NewStoreTranslations(store Store, resolver FallbackResolver, locale string) *StoreTranslations {
	normalized := normalizeLocale(locale)

	chain := []string{normalized}
	if resolver != nil {
		chain = append(chain, resolver.Resolve(normalized)...)
	}
	chain = append(chain, localeParentChain(normalized)...)

	return &StoreTranslations{store: store, chain: normalizeChain(chain)}
}

func (st *StoreTranslations) Gettext(message string) string {
	for _, catalog := range st.candidates() {
		if text, ok := catalog.lookupText(message); ok {
			return text
		}
	}
	return message
}

func (st *StoreTranslations) NGettext(singular, plural string, n int) string {
	for _, catalog := range st.candidates() {
		if text, ok := catalog.lookupPlural(singular, n); ok {
			return text
		}
	}
	if n == 1 {
		return singular
	}
	return plural
}

func (st *StoreTranslations) PGettext(msgContext, message string) string {
	for _, catalog := range st.candidates() {
		if text, ok := catalog.lookupText(msgContext + msgContextGlue + message); ok {
			return text
		}
	}
	return message
}

func (st *StoreTranslations) NPGettext(msgContext, singular, plural string, n int) string {
	for _, catalog := range st.candidates() {
		if text, ok := catalog.lookupPlural(msgContext+msgContextGlue+singular, n); ok {
			return text
		}
	}
	if n == 1 {
		return singular
	}
	return plural
}

func (st *StoreTranslations) candidates() []*Catalog {
	if st == nil || st.store == nil {
		return nil
	}

	catalogs := make([]*Catalog, 0, len(st.chain))
	for _, locale := range st.chain {
		if catalog, ok := st.store.Catalog(locale); ok {
			catalogs = append(catalogs, catalog)
		}
	}
	return catalogs
}
