package i18n

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	n, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString(%q): %v", s, err)
	}
	return n
}

func TestStandardEngineFormatCurrency(t *testing.T) {
	engine, err := NewStandardEngine()
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	tests := []struct {
		name string
		spec FormatSpec
		val  string
		want string
	}{
		{
			name: "usd default",
			spec: FormatSpec{Locale: "en-US", Currency: "USD", GroupSeparator: true, CurrencyDigits: true},
			val:  "1.99",
			want: "$1.99",
		},
		{
			name: "usd grouped",
			spec: FormatSpec{Locale: "en-US", Currency: "USD", GroupSeparator: true, CurrencyDigits: true},
			val:  "100457.99",
			want: "$100,457.99",
		},
		{
			name: "gbp",
			spec: FormatSpec{Locale: "en-GB", Currency: "GBP", GroupSeparator: true, CurrencyDigits: true},
			val:  "100457.99",
			want: "£100,457.99",
		},
		{
			name: "german locale",
			spec: FormatSpec{Locale: "de", Currency: "USD", GroupSeparator: true, CurrencyDigits: true},
			val:  "1.99",
			want: "1,99 $",
		},
		{
			name: "german grouped",
			spec: FormatSpec{Locale: "de-DE", Currency: "EUR", GroupSeparator: true, CurrencyDigits: true},
			val:  "100457.99",
			want: "100.457,99 €",
		},
		{
			name: "yen has no fraction",
			spec: FormatSpec{Locale: "ja", Currency: "JPY", GroupSeparator: true, CurrencyDigits: true},
			val:  "1234.56",
			want: "¥1,235",
		},
		{
			name: "unknown code renders verbatim",
			spec: FormatSpec{Locale: "en", Currency: "nosuchthing", GroupSeparator: true, CurrencyDigits: true},
			val:  "1.99",
			want: "nosuchthing1.99",
		},
		{
			name: "grouping disabled",
			spec: FormatSpec{Locale: "en", Currency: "USD", GroupSeparator: false, CurrencyDigits: true},
			val:  "100457.99",
			want: "$100457.99",
		},
		{
			name: "explicit pattern wins",
			spec: FormatSpec{Locale: "en", Currency: "USD", Pattern: "¤#,##0.00 ¤¤", GroupSeparator: true, CurrencyDigits: true},
			val:  "1.99",
			want: "$1.99 USD",
		},
		{
			name: "garbage pattern renders literally",
			spec: FormatSpec{Locale: "en", Currency: "USD", Pattern: "bad format", GroupSeparator: true, CurrencyDigits: true},
			val:  "1.99",
			want: "bad format1.99",
		},
		{
			name: "currency digits off keeps pattern fraction",
			spec: FormatSpec{Locale: "en", Currency: "USD", Pattern: "¤#,###", GroupSeparator: true},
			val:  "1.99",
			want: "$2",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.Format(mustDecimal(t, tc.val), tc.spec)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Format = %q want %q", got, tc.want)
			}
		})
	}
}

func TestStandardEngineFormatDecimal(t *testing.T) {
	engine, err := NewStandardEngine()
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	tests := []struct {
		name   string
		locale string
		val    string
		want   string
	}{
		{name: "english", locale: "en-US", val: "374881.01", want: "374,881.01"},
		{name: "german", locale: "de", val: "374881.01", want: "374.881,01"},
		{name: "french space group", locale: "fr", val: "374881.01", want: "374 881,01"},
		{name: "integer stays bare", locale: "en", val: "42", want: "42"},
		{name: "max three fraction digits", locale: "en", val: "1.23456", want: "1.235"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.Format(mustDecimal(t, tc.val), FormatSpec{Locale: tc.locale, GroupSeparator: true})
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Format = %q want %q", got, tc.want)
			}
		})
	}
}

func TestStandardEngineUnknownLocale(t *testing.T) {
	engine, err := NewStandardEngine()
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	for _, locale := range []string{"", "nope!", "zz", "xx-XX"} {
		_, err := engine.Format(decimal.NewFromInt(1), FormatSpec{Locale: locale, Currency: "USD"})
		var formatting *FormattingError
		if !errors.As(err, &formatting) {
			t.Fatalf("Format(%q) err = %v, want FormattingError", locale, err)
		}
		if !errors.Is(err, ErrUnknownLocale) {
			t.Fatalf("Format(%q) err = %v, want ErrUnknownLocale cause", locale, err)
		}
	}
}

func TestStandardEngineParse(t *testing.T) {
	engine, err := NewStandardEngine()
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	tests := []struct {
		name   string
		locale string
		input  string
		want   string
	}{
		{name: "english grouped", locale: "en", input: "1,234.56", want: "1234.56"},
		{name: "german grouped", locale: "de", input: "1.234,56", want: "1234.56"},
		{name: "plain", locale: "en", input: "42", want: "42"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.Parse(tc.input, tc.locale)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("Parse(%q) = %s want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestStandardEngineRoundTrip(t *testing.T) {
	engine, err := NewStandardEngine()
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	values := []string{"0", "1.5", "374881.01", "-2500.75"}
	locales := []string{"en", "de", "es", "it"}

	for _, locale := range locales {
		for _, raw := range values {
			value := mustDecimal(t, raw)
			formatted, err := engine.Format(value, FormatSpec{Locale: locale, GroupSeparator: true})
			if err != nil {
				t.Fatalf("Format(%s, %s): %v", raw, locale, err)
			}
			parsed, err := engine.Parse(formatted, locale)
			if err != nil {
				t.Fatalf("Parse(%q, %s): %v", formatted, locale, err)
			}
			if !parsed.Equal(value) {
				t.Fatalf("round trip %s via %s: got %s", raw, locale, parsed)
			}
		}
	}
}

func TestStandardEngineFallsBackToParentLocale(t *testing.T) {
	engine, err := NewStandardEngine()
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	// en-AU has no entry of its own; formatting data comes from en.
	got, err := engine.Format(mustDecimal(t, "1.99"), FormatSpec{Locale: "en-AU", Currency: "USD", GroupSeparator: true, CurrencyDigits: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "$1.99" {
		t.Fatalf("Format = %q want $1.99", got)
	}
}

func TestStandardEngineFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("x-custom", "de")

	engine, err := NewStandardEngine(WithEngineFallbackResolver(resolver))
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	got, err := engine.Format(mustDecimal(t, "1.99"), FormatSpec{Locale: "x-custom", Currency: "USD", GroupSeparator: true, CurrencyDigits: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "1,99 $" {
		t.Fatalf("Format = %q want 1,99 $", got)
	}
}

func TestStandardEngineCustomSymbol(t *testing.T) {
	engine, err := NewStandardEngine(WithCurrencySymbol("USD", "US$"))
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	got, err := engine.Format(mustDecimal(t, "1.99"), FormatSpec{Locale: "en", Currency: "USD", GroupSeparator: true, CurrencyDigits: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "US$1.99" {
		t.Fatalf("Format = %q want US$1.99", got)
	}
}

func TestStandardEngineCheckLocale(t *testing.T) {
	engine, err := NewStandardEngine()
	if err != nil {
		t.Fatalf("NewStandardEngine: %v", err)
	}

	if err := engine.CheckLocale("en-US"); err != nil {
		t.Fatalf("CheckLocale(en-US): %v", err)
	}
	if err := engine.CheckLocale("nope!"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("CheckLocale(nope!) = %v, want ErrUnknownLocale", err)
	}
}
