// Package timefmt renders calendar time as human-readable strings in three
// related styles: full date-time, date only, and template driven output with
// an optional weekday label.
//
// Every formatter accepts either a calendar value (anything implementing
// Calendar, which time.Time already does) or an integer count of milliseconds
// since the Unix epoch. Both are normalised into a single Fields record before
// rendering, so the three styles always agree on the underlying values.
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/timefmt"
//
//	s, ok := timefmt.FormatDateTime(time.Now())
//	// s == "2017-10-15 08:03:09"
//
//	d, ok := timefmt.FormatDate(int64(1508025600000), timefmt.WithDateSeparator("/"))
//	// d == "2017/10/15" (in the configured location)
//
//	w, ok := timefmt.FormatTemplate(t, timefmt.WithTemplate("{y}年{m}月{d}日 {w}"))
//	// w == "2017年10月15日 星期日"
//
// # Template tokens
//
// A token is an opening brace, one or more of the letters y m d h i s w and a
// closing brace. The last letter selects the field: y year, m month, d day,
// h hour, i minute, s second, w weekday label. Numeric fields below ten are
// prefixed with a single zero. Everything else is copied verbatim.
//
// # Absence
//
// Formatters report unusable input (nil, strings, fractional or non-finite
// numbers, nil pointers) through the second return value instead of an error.
// Millisecond input is converted in time.Local unless WithLocation is given;
// a time.Time keeps its own location unless WithLocation is given.
package timefmt
