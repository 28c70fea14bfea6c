package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestFileLoaderYAML(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "de.yaml", `
Hello, World!: Hallo, Welt!
"month|May": Mai
"{count} item":
  one: "{count} Artikel"
  other: "{count} Artikel"
`)

	catalog, err := NewFileLoader(dir).Load("de")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := catalog.Gettext("Hello, World!"); got != "Hallo, Welt!" {
		t.Fatalf("Gettext = %q", got)
	}
	if got := catalog.PGettext("month", "May"); got != "Mai" {
		t.Fatalf("PGettext = %q", got)
	}
	if got := catalog.NGettext("{count} item", "{count} items", 5); got != "{count} Artikel" {
		t.Fatalf("NGettext = %q", got)
	}
}

func TestFileLoaderJSON(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "es.json", `{
  "Hello, World!": "¡Hola, Mundo!",
  "{count} item": {
    "one": "{count} artículo",
    "other": "{count} artículos"
  }
}`)

	catalog, err := NewFileLoader(dir).Load("es")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := catalog.Gettext("Hello, World!"); got != "¡Hola, Mundo!" {
		t.Fatalf("Gettext = %q", got)
	}
	if got := catalog.NGettext("{count} item", "{count} items", 1); got != "{count} artículo" {
		t.Fatalf("NGettext(1) = %q", got)
	}
	if got := catalog.NGettext("{count} item", "{count} items", 4); got != "{count} artículos" {
		t.Fatalf("NGettext(4) = %q", got)
	}
}

func TestFileLoaderNormalizesLocaleName(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "pt-BR.yml", "Hello: Olá\n")

	catalog, err := NewFileLoader(dir).Load("pt_BR")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if catalog.Locale() != "pt-BR" {
		t.Fatalf("Locale = %q want pt-BR", catalog.Locale())
	}
}

func TestFileLoaderMissingLocale(t *testing.T) {
	loader := NewFileLoader(t.TempDir())

	_, err := loader.Load("fr")
	if !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("err = %v, want ErrMissingTranslation", err)
	}
}

func TestFileLoaderRejectsBadPluralForm(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "en.yaml", `
"{count} item":
  one: "{count} item"
  lots: "{count} items"
`)

	if _, err := NewFileLoader(dir).Load("en"); err == nil {
		t.Fatal("expected error for unknown plural form")
	}
}

func TestFileLoaderRequiresOtherForm(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "en.yaml", `
"{count} item":
  one: "{count} item"
`)

	if _, err := NewFileLoader(dir).Load("en"); err == nil {
		t.Fatal("expected error for missing other form")
	}
}

func TestStaticStoreFromLoader(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "en.yaml", "Hello: Hello\n")
	writeTestFile(t, dir, "de.yaml", "Hello: Hallo\n")

	store, err := NewStaticStoreFromLoader(NewFileLoader(dir), "en", "de")
	if err != nil {
		t.Fatalf("NewStaticStoreFromLoader: %v", err)
	}

	locales := store.Locales()
	if len(locales) != 2 {
		t.Fatalf("Locales = %v", locales)
	}

	if _, err := NewStaticStoreFromLoader(NewFileLoader(dir), "en", "fr"); err == nil {
		t.Fatal("expected error for missing locale")
	}
}
