package timefmt

import (
	"strconv"
	"strings"
)

// FormatDateTime renders YYYY<ds>MM<ds>DD HH<ts>MM<ts>SS.
func FormatDateTime(v any, opts ...Option) (string, bool) {
	cfg := applyOptions(opts)
	f, ok := Normalize(v, cfg.location)
	if !ok {
		return "", false
	}

	var b strings.Builder
	writeDate(&b, f, cfg.dateSeparator)
	b.WriteByte(' ')
	b.WriteString(pad(f.Hour))
	b.WriteString(cfg.timeSeparator)
	b.WriteString(pad(f.Minute))
	b.WriteString(cfg.timeSeparator)
	b.WriteString(pad(f.Second))
	return b.String(), true
}

// FormatDate renders YYYY<ds>MM<ds>DD.
func FormatDate(v any, opts ...Option) (string, bool) {
	cfg := applyOptions(opts)
	f, ok := Normalize(v, cfg.location)
	if !ok {
		return "", false
	}

	var b strings.Builder
	writeDate(&b, f, cfg.dateSeparator)
	return b.String(), true
}

// FormatTemplate substitutes {y} {m} {d} {h} {i} {s} {w} tokens in the
// configured template.
func FormatTemplate(v any, opts ...Option) (string, bool) {
	cfg := applyOptions(opts)
	f, ok := Normalize(v, cfg.location)
	if !ok {
		return "", false
	}
	return render(cfg.template, f), true
}

func writeDate(b *strings.Builder, f Fields, sep string) {
	b.WriteString(strconv.Itoa(f.Year))
	b.WriteString(sep)
	b.WriteString(pad(f.Month))
	b.WriteString(sep)
	b.WriteString(pad(f.Day))
}

// pad prefixes values below ten with a zero. The year goes through the same
// rule in templates, so year 7 renders as "07" there.
func pad(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func render(tpl string, f Fields) string {
	var b strings.Builder
	b.Grow(len(tpl) + 8)

	for i := 0; i < len(tpl); {
		if tpl[i] != '{' {
			b.WriteByte(tpl[i])
			i++
			continue
		}

		j := i + 1
		for j < len(tpl) && isTokenLetter(tpl[j]) {
			j++
		}
		if j == i+1 || j >= len(tpl) || tpl[j] != '}' {
			b.WriteByte('{')
			i++
			continue
		}

		b.WriteString(fieldValue(tpl[j-1], f))
		i = j + 1
	}

	return b.String()
}

func isTokenLetter(c byte) bool {
	switch c {
	case 'y', 'm', 'd', 'h', 'i', 's', 'w':
		return true
	}
	return false
}

func fieldValue(key byte, f Fields) string {
	switch key {
	case 'y':
		return pad(f.Year)
	case 'm':
		return pad(f.Month)
	case 'd':
		return pad(f.Day)
	case 'h':
		return pad(f.Hour)
	case 'i':
		return pad(f.Minute)
	case 's':
		return pad(f.Second)
	default:
		return WeekdayLabel(f.Weekday)
	}
}
