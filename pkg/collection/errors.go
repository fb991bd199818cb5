package collection

import "errors"

// ErrNotSerializable is returned by CloneJSON when an element cannot make the JSON round trip.
var ErrNotSerializable = errors.New("collection: element is not JSON serializable")
