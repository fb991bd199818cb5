package cli

import "errors"

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingArgument   = errors.New("missing argument")
	ErrNoResult          = errors.New("no result for the given input")
	ErrInvalidTime       = errors.New("invalid time input")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidJSON       = errors.New("invalid JSON input")
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrInvalidFlags      = errors.New("invalid flags")
)
