package logger

import "log/slog"

// Attribute helpers keep log key naming consistent across the codebase.

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// AccountNo records an account number under the key "account_no".
func AccountNo(no string) slog.Attr {
	return slog.String("account_no", no)
}

// Strategy records a validation strategy name under the key "strategy".
func Strategy(name string) slog.Attr {
	return slog.String("strategy", name)
}

// Attempt records a retry attempt counter under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
