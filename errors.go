package i18n

import (
	"errors"
	"fmt"
)

// ErrUnknownLocale indicates a locale the formatting engine has no data for.
var ErrUnknownLocale = errors.New("i18n: unknown locale")

// ErrBadPattern indicates a number pattern the engine could not parse.
var ErrBadPattern = errors.New("i18n: malformed number pattern")

// ErrUncoercible marks values that cannot be read as a number. Lenient
// filters substitute zero; strict filters escalate to InvalidInputError.
var ErrUncoercible = errors.New("i18n: value is not coercible to a number")

// ErrMissingTranslation indicates that no translation was found for locale/key.
var ErrMissingTranslation = errors.New("i18n: missing translation")

// ErrMissingVariable indicates a message placeholder with no matching variable.
var ErrMissingVariable = errors.New("i18n: missing interpolation variable")

// FormattingError wraps any fault reported by the formatting engine: an
// unknown locale, a pattern that does not parse, or bad engine data. Callers
// get a single error type regardless of which underlying fault occurred; the
// cause stays reachable through errors.Is and errors.As.
type FormattingError struct {
	Locale   string
	Pattern  string
	Currency string
	Err      error
}

func (e *FormattingError) Error() string {
	msg := "i18n: formatting failed"
	if e.Locale != "" {
		msg += fmt.Sprintf(" for locale %q", e.Locale)
	}
	if e.Currency != "" {
		msg += fmt.Sprintf(" currency %q", e.Currency)
	}
	if e.Pattern != "" {
		msg += fmt.Sprintf(" pattern %q", e.Pattern)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormattingError) Unwrap() error { return e.Err }

// InvalidInputError reports input the coercer cannot gracefully degrade:
// NaN or infinite floats, or uncoercible values under strict mode.
type InvalidInputError struct {
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("i18n: invalid input %v: %s", e.Value, e.Reason)
}

// TranslationError reports a failure while rendering a translated message,
// typically a placeholder with no matching variable.
type TranslationError struct {
	Key string
	Err error
}

func (e *TranslationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("i18n: translation failed for %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("i18n: translation failed: %v", e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }
