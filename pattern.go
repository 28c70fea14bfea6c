package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
)

// numberPattern is the compiled form of a CLDR-style number pattern. The
// supported subset covers what the filters exercise: "#" and "0" digit
// positions, "," grouping, "." decimal mark, "¤" currency symbol, "¤¤" ISO
// code, and literal affix text. A pattern with no digit positions at all
// renders its text verbatim followed by the bare number, which is what
// permissive template semantics expect from a garbage format string.
type numberPattern struct {
	raw      string
	prefix   []affixPart
	suffix   []affixPart
	minInt   int
	minFrac  int
	maxFrac  int
	grouping bool
	natural  bool
}

type affixPart struct {
	literal string
	symbol  bool
	isoCode bool
}

const patternDigitChars = "#0,."

func parsePattern(raw string) (*numberPattern, error) {
	start := strings.IndexAny(raw, patternDigitChars)
	if start < 0 {
		prefix, err := parseAffix(raw)
		if err != nil {
			return nil, err
		}
		return &numberPattern{raw: raw, prefix: prefix, natural: true}, nil
	}

	end := start
	for i := start; i < len(raw); i++ {
		if strings.IndexByte(patternDigitChars, raw[i]) >= 0 {
			end = i
		}
	}

	prefix, err := parseAffix(raw[:start])
	if err != nil {
		return nil, err
	}
	suffix, err := parseAffix(raw[end+1:])
	if err != nil {
		return nil, err
	}

	p := &numberPattern{raw: raw, prefix: prefix, suffix: suffix}

	digits := raw[start : end+1]
	intPart := digits
	if idx := strings.IndexByte(digits, '.'); idx >= 0 {
		fracPart := digits[idx+1:]
		if strings.ContainsAny(fracPart, ".") {
			return nil, ErrBadPattern
		}
		intPart = digits[:idx]
		p.minFrac = strings.Count(fracPart, "0")
		p.maxFrac = p.minFrac + strings.Count(fracPart, "#")
	}

	p.grouping = strings.ContainsRune(intPart, ',')
	p.minInt = strings.Count(intPart, "0")
	if p.minInt == 0 {
		p.minInt = 1
	}

	return p, nil
}

func parseAffix(raw string) ([]affixPart, error) {
	if raw == "" {
		return nil, nil
	}

	var (
		parts   []affixPart
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, affixPart{literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '¤' {
			literal.WriteRune(runes[i])
			continue
		}
		flush()
		if i+1 < len(runes) && runes[i+1] == '¤' {
			parts = append(parts, affixPart{isoCode: true})
			i++
			continue
		}
		parts = append(parts, affixPart{symbol: true})
	}
	flush()

	return parts, nil
}

// currencySymbols carries the resolved display symbol and ISO code used when
// rendering "¤" and "¤¤" affix positions.
type currencySymbols struct {
	symbol string
	code   string
}

// render produces the final display string. fracDigits >= 0 pins the
// fraction length, overriding the pattern; this is how currency precision
// (e.g. 2 for USD, 0 for JPY) takes effect when currency digits are enabled.
// Pass -1 to let the pattern, or the value's own scale in natural mode,
// decide.
func (p *numberPattern) render(value decimal.Decimal, conv *Conventions, sym currencySymbols, group bool, fracDigits int) string {
	neg := value.IsNegative()
	abs := value.Abs()

	minFrac, maxFrac := p.minFrac, p.maxFrac
	if fracDigits >= 0 {
		minFrac, maxFrac = fracDigits, fracDigits
	} else if p.natural {
		scale := int(-abs.Exponent())
		if scale < 0 {
			scale = 0
		}
		minFrac, maxFrac = scale, scale
	}

	fixed := abs.Round(int32(maxFrac)).StringFixed(int32(maxFrac))

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart, fracPart = fixed[:idx], fixed[idx+1:]
	}

	for len(fracPart) > minFrac && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	for len(intPart) < p.minInt {
		intPart = "0" + intPart
	}

	if p.grouping && group {
		intPart = groupDigits(intPart, conv.groupSeparator(), conv.groupSize())
	}

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	writeAffix(&out, p.prefix, sym)
	out.WriteString(intPart)
	if fracPart != "" {
		out.WriteString(conv.decimalSeparator())
		out.WriteString(fracPart)
	}
	writeAffix(&out, p.suffix, sym)
	return out.String()
}

func writeAffix(out *strings.Builder, parts []affixPart, sym currencySymbols) {
	for _, part := range parts {
		switch {
		case part.symbol:
			out.WriteString(sym.symbol)
		case part.isoCode:
			out.WriteString(sym.code)
		default:
			out.WriteString(part.literal)
		}
	}
}

func groupDigits(digits, separator string, size int) string {
	if separator == "" || size <= 0 || len(digits) <= size {
		return digits
	}

	var out strings.Builder
	lead := len(digits) % size
	if lead > 0 {
		out.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += size {
		if out.Len() > 0 {
			out.WriteString(separator)
		}
		out.WriteString(digits[i : i+size])
	}
	return out.String()
}
