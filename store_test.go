package i18n

import "testing"

func TestStaticStore(t *testing.T) {
	store := NewStaticStore(
		mustCatalog(t, "en", map[string]MessageEntry{"Hello": {Other: "Hello"}}),
		mustCatalog(t, "de", map[string]MessageEntry{"Hello": {Other: "Hallo"}}),
	)

	if _, ok := store.Catalog("de"); !ok {
		t.Fatal("expected de catalog")
	}
	if _, ok := store.Catalog("de_DE"); ok {
		t.Fatal("did not expect de_DE catalog")
	}
	if _, ok := store.Catalog("fr"); ok {
		t.Fatal("did not expect fr catalog")
	}

	locales := store.Locales()
	if len(locales) != 2 || locales[0] != "de" || locales[1] != "en" {
		t.Fatalf("Locales = %v", locales)
	}
}

func TestStaticStoreReplacesCatalog(t *testing.T) {
	store := NewStaticStore(mustCatalog(t, "en", map[string]MessageEntry{"Hello": {Other: "Hi"}}))
	store.Add(mustCatalog(t, "en", map[string]MessageEntry{"Hello": {Other: "Hey"}}))

	catalog, ok := store.Catalog("en")
	if !ok {
		t.Fatal("expected en catalog")
	}
	if got := catalog.Gettext("Hello"); got != "Hey" {
		t.Fatalf("Gettext = %q want Hey", got)
	}
}

func TestStoreTranslationsParentFallback(t *testing.T) {
	store := NewStaticStore(
		mustCatalog(t, "de", map[string]MessageEntry{"Hello": {Other: "Hallo"}}),
	)

	translations := NewStoreTranslations(store, nil, "de-AT")

	if got := translations.Gettext("Hello"); got != "Hallo" {
		t.Fatalf("Gettext = %q want Hallo", got)
	}
	if got := translations.Gettext("missing"); got != "missing" {
		t.Fatalf("Gettext miss = %q", got)
	}
}

func TestStoreTranslationsResolverChain(t *testing.T) {
	store := NewStaticStore(
		mustCatalog(t, "es", map[string]MessageEntry{"Hello": {Other: "Hola"}}),
	)

	resolver := NewStaticFallbackResolver()
	resolver.Set("pt-BR", "es")

	translations := NewStoreTranslations(store, resolver, "pt-BR")

	if got := translations.Gettext("Hello"); got != "Hola" {
		t.Fatalf("Gettext = %q want Hola", got)
	}
}

func TestStoreTranslationsClosestCatalogWins(t *testing.T) {
	store := NewStaticStore(
		mustCatalog(t, "de", map[string]MessageEntry{"Hello": {Other: "Hallo"}}),
		mustCatalog(t, "de-CH", map[string]MessageEntry{"Hello": {Other: "Grüezi"}}),
	)

	translations := NewStoreTranslations(store, nil, "de-CH")

	if got := translations.Gettext("Hello"); got != "Grüezi" {
		t.Fatalf("Gettext = %q want Grüezi", got)
	}
}

func TestFallbackResolverNormalizesLocales(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt_BR", "pt", "pt", "", "es")

	chain := resolver.Resolve("pt-BR")
	if len(chain) != 2 || chain[0] != "pt" || chain[1] != "es" {
		t.Fatalf("Resolve = %v", chain)
	}

	if chain := resolver.Resolve("unknown"); chain != nil {
		t.Fatalf("Resolve(unknown) = %v, want nil", chain)
	}
}

func TestLocaleParentChain(t *testing.T) {
	chain := localeParentChain("de-AT")
	if len(chain) == 0 || chain[0] != "de" {
		t.Fatalf("localeParentChain(de-AT) = %v", chain)
	}

	if chain := localeParentChain("de"); len(chain) != 0 {
		t.Fatalf("localeParentChain(de) = %v, want empty", chain)
	}
}
