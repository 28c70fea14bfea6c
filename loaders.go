package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/feature/plural"
	"gopkg.in/yaml.v3"
)

// Loader produces a message catalog for one locale.
type Loader interface {
	Load(locale string) (*Catalog, error)
}

// LoaderFunc adapts a bare function to the Loader interface.
type LoaderFunc func(locale string) (*Catalog, error)

func (fn LoaderFunc) Load(locale string) (*Catalog, error) {
	return fn(locale)
}

// FileLoader reads per-locale catalog files named <locale>.<ext> from a
// directory, in YAML or JSON.
//
// A file maps message ids to either a plain translation string or a mapping
// of CLDR plural form names (zero, one, two, few, many, other) to strings.
// A message id written as "context|id" is stored under that message context.
type FileLoader struct {
	dir        string
	extensions []string
}

func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir, extensions: []string{".yaml", ".yml", ".json"}}
}

func (l *FileLoader) Load(locale string) (*Catalog, error) {
	if l == nil || l.dir == "" {
		return nil, errors.New("i18n: no loader directory configured")
	}

	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil, ErrUnknownLocale
	}

	for _, ext := range l.extensions {
		path := filepath.Join(l.dir, normalized+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		entries, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}
		return NewCatalog(normalized, entries)
	}

	return nil, &TranslationError{Key: normalized, Err: ErrMissingTranslation}
}

func decodeCatalogFile(path string, data []byte) (map[string]MessageEntry, error) {
	var raw map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty catalog")
	}

	entries := make(map[string]MessageEntry, len(raw))
	for key, value := range raw {
		if key == "" {
			return nil, errors.New("empty message id")
		}

		entry, err := buildMessageEntry(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		entries[catalogKey(key)] = entry
	}
	return entries, nil
}

// catalogKey rewrites the "context|id" file notation to the gettext glue
// used for catalog lookups.
func catalogKey(key string) string {
	if idx := strings.Index(key, "|"); idx > 0 && idx < len(key)-1 {
		return key[:idx] + msgContextGlue + key[idx+1:]
	}
	return key
}

func buildMessageEntry(value any) (MessageEntry, error) {
	switch v := value.(type) {
	case string:
		return MessageEntry{Other: v}, nil
	case map[string]any:
		return buildPluralEntry(v)
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, item := range v {
			name, ok := key.(string)
			if !ok {
				return MessageEntry{}, fmt.Errorf("plural form name must be a string, got %T", key)
			}
			converted[name] = item
		}
		return buildPluralEntry(converted)
	default:
		return MessageEntry{}, fmt.Errorf("unsupported message value type %T", value)
	}
}

func buildPluralEntry(variants map[string]any) (MessageEntry, error) {
	if len(variants) == 0 {
		return MessageEntry{}, errors.New("no plural forms defined")
	}

	entry := MessageEntry{Forms: make(map[plural.Form]string, len(variants))}
	for name, value := range variants {
		form, ok := pluralForms[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return MessageEntry{}, fmt.Errorf("unknown plural form %q", name)
		}
		text, ok := value.(string)
		if !ok {
			return MessageEntry{}, fmt.Errorf("plural form %s must be a string, got %T", name, value)
		}
		entry.Forms[form] = text
	}

	if other, ok := entry.Forms[plural.Other]; ok {
		entry.Other = other
	} else {
		return MessageEntry{}, errors.New("missing 'other' plural form")
	}
	return entry, nil
}
