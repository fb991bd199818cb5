package query

// Scanner walks a query string and yields key=value pairs one at a time.
// A key is a maximal run of bytes other than '?', '=' and '&' that is
// immediately followed by '='; the value is the run after that '='.
// Text that never forms such a pair (a URL path, a bare flag) is skipped.
type Scanner struct {
	src string
	pos int
	key string
	raw string
}

// NewScanner creates a scanner over s.
func NewScanner(s string) *Scanner {
	return &Scanner{src: s}
}

// Next advances to the next pair and reports whether one was found.
func (s *Scanner) Next() bool {
	for s.pos < len(s.src) {
		if isBoundary(s.src[s.pos]) {
			s.pos++
			continue
		}

		start := s.pos
		end := start
		for end < len(s.src) && !isBoundary(s.src[end]) {
			end++
		}
		if end >= len(s.src) || s.src[end] != '=' {
			s.pos = end
			continue
		}

		valStart := end + 1
		valEnd := valStart
		for valEnd < len(s.src) && !isBoundary(s.src[valEnd]) {
			valEnd++
		}

		s.key = s.src[start:end]
		s.raw = s.src[valStart:valEnd]
		s.pos = valEnd
		return true
	}

	s.key, s.raw = "", ""
	return false
}

// Key returns the key of the current pair.
func (s *Scanner) Key() string { return s.key }

// RawValue returns the still-encoded value of the current pair.
func (s *Scanner) RawValue() string { return s.raw }

func isBoundary(c byte) bool {
	return c == '?' || c == '=' || c == '&'
}
