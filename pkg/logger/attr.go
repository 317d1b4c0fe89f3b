package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the package or subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// FieldID records the input field identifier under the key "field_id".
// If id is nil, it returns an empty Attr.
func FieldID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("field_id", id)
}

// Classification records the billing country or card network a field is
// validating against, using its String form.
func Classification(c fmt.Stringer) slog.Attr {
	if c == nil {
		return slog.Attr{}
	}
	return slog.String("classification", c.String())
}

// Length records a text length. Input contents are never logged, only their size.
func Length(n int) slog.Attr {
	return slog.Int("length", n)
}

func Valid(v bool) slog.Attr {
	return slog.Bool("valid", v)
}

func Accepted(v bool) slog.Attr {
	return slog.Bool("accepted", v)
}
