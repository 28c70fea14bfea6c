package i18n

import (
	"strings"
	"sync"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// XTextEngine sources its locale conventions from golang.org/x/text instead
// of the embedded table: separators are probed from the locale's printer and
// currency symbols are extracted the same way, so any locale x/text knows is
// usable without shipping conventions for it. Pattern rendering is shared
// with StandardEngine.
type XTextEngine struct {
	mu      sync.RWMutex
	locales map[string]*xtextLocale
	symbols map[string]string
}

type xtextLocale struct {
	tag     language.Tag
	printer *message.Printer
	conv    *Conventions
}

func NewXTextEngine() *XTextEngine {
	return &XTextEngine{
		locales: make(map[string]*xtextLocale),
		symbols: currencySymbolTable,
	}
}

func (e *XTextEngine) Format(value decimal.Decimal, spec FormatSpec) (string, error) {
	xl, err := e.locale(spec.Locale)
	if err != nil {
		return "", &FormattingError{Locale: spec.Locale, Currency: spec.Currency, Err: err}
	}

	conv := xl.conv
	if spec.Currency != "" {
		if unit, err := currency.ParseISO(spec.Currency); err == nil && unit.String() != "XXX" {
			if symbol, pattern, ok := e.probeCurrency(xl, unit); ok {
				conv = conv.clone()
				if conv.CurrencySymbols == nil {
					conv.CurrencySymbols = make(map[string]string, 1)
				}
				conv.CurrencySymbols[unit.String()] = symbol
				conv.CurrencyPattern = pattern
			}
		}
	}

	return renderSpec(value, spec, conv, e.symbols)
}

func (e *XTextEngine) Parse(input, locale string) (decimal.Decimal, error) {
	xl, err := e.locale(locale)
	if err != nil {
		return decimal.Decimal{}, &FormattingError{Locale: locale, Err: err}
	}

	sep := separators{
		decimal: firstRune(xl.conv.decimalSeparator(), '.'),
		group:   firstRune(xl.conv.groupSeparator(), ','),
	}
	return parseNumeric(input, sep, false)
}

// CheckLocale reports whether x/text can parse and probe the locale.
func (e *XTextEngine) CheckLocale(locale string) error {
	_, err := e.locale(locale)
	return err
}

func (e *XTextEngine) locale(locale string) (*xtextLocale, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil, ErrUnknownLocale
	}

	e.mu.RLock()
	cached, ok := e.locales[normalized]
	e.mu.RUnlock()
	if ok {
		return cached, nil
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return nil, ErrUnknownLocale
	}

	printer := message.NewPrinter(tag)
	decimalSep, groupSep, ok := probeSeparators(printer)
	if !ok {
		return nil, ErrUnknownLocale
	}

	xl := &xtextLocale{
		tag:     tag,
		printer: printer,
		conv: &Conventions{
			Locale:          normalized,
			DecimalSep:      decimalSep,
			GroupSep:        groupSep,
			DecimalPattern:  "#,##0.###",
			CurrencyPattern: "¤#,##0.00",
		},
	}

	e.mu.Lock()
	e.locales[normalized] = xl
	e.mu.Unlock()
	return xl, nil
}

// probeSeparators formats a known value and reads the separators back out of
// the result. Locales that do not render ASCII digits are not supported.
func probeSeparators(printer *message.Printer) (decimalSep, groupSep string, ok bool) {
	sample := printer.Sprintf("%v", number.Decimal(1234567.891,
		number.MinFractionDigits(3), number.MaxFractionDigits(3)))

	var (
		runs    []string
		current strings.Builder
		digits  int
	)
	for _, r := range sample {
		if r >= '0' && r <= '9' {
			if current.Len() > 0 {
				runs = append(runs, current.String())
				current.Reset()
			}
			digits++
			continue
		}
		if unicode.IsDigit(r) {
			return "", "", false
		}
		if digits > 0 {
			current.WriteRune(r)
		}
	}

	if digits != 10 {
		return "", "", false
	}

	switch len(runs) {
	case 0:
		return ".", ",", true
	case 1:
		return runs[0], ",", true
	default:
		return runs[len(runs)-1], runs[0], true
	}
}

// probeCurrency extracts the locale's display symbol and its position the
// way the printer renders it, falling back to English and then to the ISO
// code when extraction comes back empty.
func (e *XTextEngine) probeCurrency(xl *xtextLocale, unit currency.Unit) (symbol, pattern string, ok bool) {
	const probeAmount = 1234.56

	amountOpts := []number.Option{
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	}

	full := xl.printer.Sprintf("%v", currency.Symbol(unit.Amount(probeAmount)))
	amount := xl.printer.Sprintf("%v", number.Decimal(probeAmount, amountOpts...))
	symbol = strings.TrimSpace(strings.ReplaceAll(full, amount, ""))

	if symbol == "" {
		englishPrinter := message.NewPrinter(language.English)
		englishFull := englishPrinter.Sprintf("%v", currency.Symbol(unit.Amount(probeAmount)))
		englishAmount := englishPrinter.Sprintf("%v", number.Decimal(probeAmount, amountOpts...))
		symbol = strings.TrimSpace(strings.ReplaceAll(englishFull, englishAmount, ""))
	}
	if symbol == "" {
		symbol = unit.String()
	}

	if idx := strings.Index(full, amount); idx > 0 {
		pattern = "#,##0.00 ¤"
	} else {
		pattern = "¤#,##0.00"
	}
	return symbol, pattern, true
}
