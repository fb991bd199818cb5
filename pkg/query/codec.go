package query

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"
)

// Parse decodes a query string into Params.
// Empty input returns nil Params and a nil error. One leading '?' is removed.
// A repeated key keeps its first position and takes the last value.
func Parse(query string) (*Params, error) {
	if query == "" {
		return nil, nil
	}
	query = strings.TrimPrefix(query, "?")

	p := NewParams()
	sc := NewScanner(query)
	for sc.Next() {
		v, err := DecodeComponent(sc.RawValue())
		if err != nil {
			return nil, errors.Join(ErrMalformedEncoding, fmt.Errorf("key %q: %w", sc.Key(), err))
		}
		p.Set(sc.Key(), v)
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(query string) *Params {
	p, err := Parse(query)
	if err != nil {
		panic(err)
	}
	return p
}

// Build encodes p as key=value pairs joined by '&', in insertion order.
// Nil or empty Params are reported as absent.
func Build(p *Params) (string, bool) {
	if p.Len() == 0 {
		return "", false
	}

	var b strings.Builder
	for k, v := range p.All() {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(EncodeComponent(Stringify(v)))
	}
	return b.String(), true
}

// BuildMap is Build over a plain map, keys sorted.
func BuildMap(m map[string]any) (string, bool) {
	if len(m) == 0 {
		return "", false
	}
	p := NewParams()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		p.Set(k, m[k])
	}
	return Build(p)
}

const upperHex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way encodeURIComponent does.
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String()
}

// DecodeComponent reverses EncodeComponent. '+' is not treated as a space.
func DecodeComponent(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("invalid UTF-8 in %q", s)
	}
	return decoded, nil
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
