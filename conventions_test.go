package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConventionsLoaderEmbeddedDefaults(t *testing.T) {
	data, err := NewConventionsLoader("").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if data.DefaultLocale != "en-US" {
		t.Fatalf("DefaultLocale = %q", data.DefaultLocale)
	}

	for _, locale := range []string{"en", "de", "es", "fr", "it", "nl", "pt", "ja", "ru"} {
		if _, ok := data.Locales[locale]; !ok {
			t.Fatalf("missing embedded conventions for %s", locale)
		}
	}

	de := data.Locales["de"]
	if de.DecimalSep != "," || de.GroupSep != "." {
		t.Fatalf("de separators = %q %q", de.DecimalSep, de.GroupSep)
	}
}

func TestConventionsLoaderUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conventions.json")
	content := `{
  "default_locale": "sv",
  "locales": {
    "sv": {
      "locale": "sv",
      "decimal_separator": ",",
      "group_separator": " ",
      "decimal_pattern": "#,##0.###",
      "currency_pattern": "#,##0.00 ¤"
    },
    "en": {
      "locale": "en",
      "decimal_separator": ".",
      "group_separator": "'",
      "decimal_pattern": "#,##0.###",
      "currency_pattern": "¤#,##0.00"
    }
  }
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := NewConventionsLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if data.DefaultLocale != "sv" {
		t.Fatalf("DefaultLocale = %q", data.DefaultLocale)
	}
	if _, ok := data.Locales["sv"]; !ok {
		t.Fatal("expected sv entry from user file")
	}
	if got := data.Locales["en"].GroupSep; got != "'" {
		t.Fatalf("en group separator = %q, user file should win", got)
	}
	// Untouched embedded locales survive the merge.
	if _, ok := data.Locales["de"]; !ok {
		t.Fatal("expected embedded de entry to survive")
	}
}

func TestConventionsLoaderOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.json")
	content := `{
  "decimal_separator": ",",
  "group_separator": "'",
  "decimal_pattern": "#,##0.###",
  "currency_pattern": "¤ #,##0.00"
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loader := NewConventionsLoader("")
	loader.AddOverride("de", path)

	data, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	de := data.Locales["de"]
	if de.GroupSep != "'" {
		t.Fatalf("de group separator = %q want '", de.GroupSep)
	}
	if de.Locale != "de" {
		t.Fatalf("de locale = %q", de.Locale)
	}
}

func TestConventionsLoaderMissingFile(t *testing.T) {
	if _, err := NewConventionsLoader(filepath.Join(t.TempDir(), "absent.json")).Load(); err == nil {
		t.Fatal("expected error for missing conventions file")
	}
}

func TestConventionsProviderChain(t *testing.T) {
	data := &ConventionsData{
		Locales: map[string]Conventions{
			"en": {Locale: "en", DecimalSep: ".", GroupSep: ","},
			"de": {Locale: "de", DecimalSep: ",", GroupSep: "."},
		},
	}

	resolver := NewStaticFallbackResolver()
	resolver.Set("x-shop", "de")

	provider := newConventionsProvider(data, resolver)

	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{name: "exact", locale: "de", want: "de"},
		{name: "parent chain", locale: "en-AU", want: "en"},
		{name: "resolver", locale: "x-shop", want: "de"},
		{name: "underscore form", locale: "de_DE", want: "de"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conv := provider.Get(tc.locale)
			if conv == nil {
				t.Fatalf("Get(%q) = nil", tc.locale)
			}
			if conv.Locale != tc.want {
				t.Fatalf("Get(%q) = %s want %s", tc.locale, conv.Locale, tc.want)
			}
		})
	}

	if conv := provider.Get("zz-ZZ"); conv != nil {
		t.Fatalf("Get(zz-ZZ) = %v, want nil", conv)
	}
	if conv := provider.Get(""); conv != nil {
		t.Fatalf("Get(\"\") = %v, want nil", conv)
	}
}

func TestConventionsDefaults(t *testing.T) {
	var conv *Conventions

	if got := conv.decimalSeparator(); got != "." {
		t.Fatalf("decimalSeparator = %q", got)
	}
	if got := conv.groupSeparator(); got != "," {
		t.Fatalf("groupSeparator = %q", got)
	}
	if got := conv.groupSize(); got != 3 {
		t.Fatalf("groupSize = %d", got)
	}
	if got := conv.decimalPattern(); got != "#,##0.###" {
		t.Fatalf("decimalPattern = %q", got)
	}
	if got := conv.currencyPattern(); got != "¤#,##0.00" {
		t.Fatalf("currencyPattern = %q", got)
	}
}
