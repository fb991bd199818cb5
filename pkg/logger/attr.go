package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error"; nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the package group handling a call, e.g. "timefmt".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command path, e.g. "query parse".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Input records the raw user input of a call.
func Input(v any) slog.Attr {
	return slog.Any("input", v)
}

// Output records the output format.
func Output(format string) slog.Attr {
	return slog.String("output", format)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
