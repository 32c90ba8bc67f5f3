package logger

import "log/slog"

// Error creates an attribute for err under the key "error".
// A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a validated field name under the key "field".
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Rule records a rule or filter name under the key "rule".
// Non-string rules (inline callables) are logged by type.
func Rule(rule any) slog.Attr {
	switch r := rule.(type) {
	case nil:
		return slog.Attr{}
	case string:
		return slog.String("rule", r)
	default:
		return slog.String("rule", typeName(r))
	}
}

// Param records a rule parameter under the key "param".
func Param(param string) slog.Attr {
	if param == "" {
		return slog.Attr{}
	}
	return slog.String("param", param)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
