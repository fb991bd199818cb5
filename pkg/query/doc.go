// Package query converts between URL query strings and ordered parameter
// mappings, and provides two helpers for preparing request parameters.
//
// Params is an insertion-ordered mapping. Parse fills it in the order keys
// are discovered in the source string; Build emits keys in insertion order.
//
//	p, err := query.Parse("http://127.0.0.1:8020/index.html?age=18&name=zhouck")
//	// p: age=18, name=zhouck (the path part never matches a key=value pair)
//
//	s, ok := query.Build(query.NewParams().Set("name", "tom").Set("age", 15))
//	// s == "name=tom&age=15"
//
// # Encoding rules
//
// Values are encoded like JavaScript's encodeURIComponent: ASCII letters,
// digits and -_.!~*'() stay as they are, everything else is percent-encoded
// per UTF-8 byte. Keys are written and read verbatim. Decoding keeps '+'
// as is.
//
// # Absence and errors
//
// Empty input is reported as absence (nil result, false flag) rather than an
// error. The only error is ErrMalformedEncoding, returned by Parse when a
// value holds a broken percent escape or decodes to invalid UTF-8; it fails
// the whole call.
//
// Lookup and Filter operate on plain request-parameter data: Lookup finds a
// field in the first matching record, Filter drops private ("_" prefixed) and
// empty entries.
package query
