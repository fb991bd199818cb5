package query

import "errors"

var (
	// ErrMalformedEncoding is returned when a query value has a broken percent escape
	// or does not decode to valid UTF-8.
	ErrMalformedEncoding = errors.New("query: malformed percent-encoding")

	// ErrInvalidParams is returned when JSON input for Params is not an object.
	ErrInvalidParams = errors.New("query: params must be a JSON object")
)
