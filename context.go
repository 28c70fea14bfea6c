package i18n

import "fmt"

// Context is the narrow read-only view of a template render context. Filters
// query it for conventional keys such as "locale" or "currency_code"; the
// concrete implementation belongs to the host template engine.
type Context interface {
	Resolve(key string) (any, bool)
}

// MapContext adapts a plain map to the Context interface.
type MapContext map[string]any

func (m MapContext) Resolve(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	value, ok := m[key]
	return value, ok
}

// resolveString pulls a usable string from the context. Missing keys, nil
// values and empty strings all count as "not provided" so that they fall
// through to the next precedence level instead of overriding it with empty.
func resolveString(ctx Context, key string) (string, bool) {
	if ctx == nil || key == "" {
		return "", false
	}

	value, ok := ctx.Resolve(key)
	if !ok || value == nil {
		return "", false
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprintf("%v", v)
	}

	if s == "" {
		return "", false
	}
	return s, true
}
