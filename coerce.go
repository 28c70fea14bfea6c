package i18n

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// separators configures how a numeric input string is read. Defaults match
// the root locale: "." for the decimal mark, "," for digit grouping.
type separators struct {
	decimal rune
	group   rune
}

var rootSeparators = separators{decimal: '.', group: ','}

// coerceNumber turns a value of unknown shape into a canonical decimal.
// Already-numeric values pass through after NaN/Inf checks. Strings are
// parsed with parseNumeric. Everything else is uncoercible; the caller
// decides between the zero fallback and escalation.
func coerceNumber(value any, sep separators, strictGrouping bool) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, ErrUncoercible
		}
		return *v, nil
	case string:
		return parseNumeric(v, sep, strictGrouping)
	case json.Number:
		n, err := decimal.NewFromString(string(v))
		if err != nil {
			return decimal.Decimal{}, ErrUncoercible
		}
		return n, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimalFromUint(uint64(v))
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimalFromUint(v)
	case float32:
		return decimalFromFloat(float64(v), value)
	case float64:
		return decimalFromFloat(v, value)
	default:
		return decimal.Decimal{}, ErrUncoercible
	}
}

func decimalFromFloat(f float64, original any) (decimal.Decimal, error) {
	if math.IsNaN(f) {
		return decimal.Decimal{}, &InvalidInputError{Value: original, Reason: "NaN is not representable"}
	}
	if math.IsInf(f, 0) {
		return decimal.Decimal{}, &InvalidInputError{Value: original, Reason: "infinity is not representable"}
	}
	return decimal.NewFromFloat(f), nil
}

func decimalFromUint(u uint64) (decimal.Decimal, error) {
	n, err := decimal.NewFromString(strconv.FormatUint(u, 10))
	if err != nil {
		return decimal.Decimal{}, ErrUncoercible
	}
	return n, nil
}

// parseNumeric reads a numeric string using the given separator conventions.
// In lenient mode grouping separators are stripped wherever they appear; with
// strictGrouping set, groups must be well formed: the first group at most
// three digits, every later group exactly three, and no grouping after the
// decimal mark.
func parseNumeric(input string, sep separators, strictGrouping bool) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Decimal{}, ErrUncoercible
	}

	var out strings.Builder
	out.Grow(len(s) + 1)

	rest := s
	switch s[0] {
	case '+':
		rest = s[1:]
	case '-':
		out.WriteByte('-')
		rest = s[1:]
	}

	var (
		sawDigit   bool
		sawDecimal bool
		run        int
		intRuns    []int
	)

	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			sawDigit = true
			run++
			out.WriteRune(r)
		case r == sep.decimal:
			if sawDecimal {
				return decimal.Decimal{}, ErrUncoercible
			}
			sawDecimal = true
			intRuns = append(intRuns, run)
			run = 0
			out.WriteByte('.')
		case r == sep.group:
			if sawDecimal {
				if strictGrouping {
					return decimal.Decimal{}, ErrUncoercible
				}
				continue
			}
			intRuns = append(intRuns, run)
			run = 0
		default:
			return decimal.Decimal{}, ErrUncoercible
		}
	}

	if !sawDigit {
		return decimal.Decimal{}, ErrUncoercible
	}
	if !sawDecimal {
		intRuns = append(intRuns, run)
	}

	if strictGrouping && !validGroupRuns(intRuns) {
		return decimal.Decimal{}, ErrUncoercible
	}

	n, err := decimal.NewFromString(normalizeNumericString(out.String()))
	if err != nil {
		return decimal.Decimal{}, ErrUncoercible
	}
	return n, nil
}

// validGroupRuns checks the digit-run lengths of the integer part once
// grouping separators have been removed.
func validGroupRuns(runs []int) bool {
	if len(runs) <= 1 {
		return true
	}
	if runs[0] < 1 || runs[0] > 3 {
		return false
	}
	for _, n := range runs[1:] {
		if n != 3 {
			return false
		}
	}
	return true
}

// normalizeNumericString makes the canonical digit string palatable to the
// decimal parser: "12." becomes "12", ".5" becomes "0.5".
func normalizeNumericString(s string) string {
	s = strings.TrimSuffix(s, ".")
	switch {
	case strings.HasPrefix(s, "."):
		return "0" + s
	case strings.HasPrefix(s, "-."):
		return "-0" + s[1:]
	case s == "-" || s == "":
		return "0"
	}
	return s
}
