package price

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	groupSize    = 3
	groupSep     = ","
	decimalSep   = "."
	fractionSize = 2
)

// Parse converts numeric input into a finite float64.
// Strings are trimmed and parsed with strconv.ParseFloat.
func Parse(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		return parseString(string(x))
	case string:
		return parseString(x)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Round rounds to two decimal places, halves going toward positive infinity.
func Round(f float64) float64 {
	return roundHalfUp(f*100) / 100
}

// Format renders v as D{1,3}(,DDD)*.DD.
func Format(v any) (string, bool) {
	f, ok := Parse(v)
	if !ok {
		return "", false
	}

	f = Round(f)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", false
	}
	if f == 0 {
		f = 0 // drop negative zero
	}

	// f already sits on a cent, so StringFixed only pads.
	s := decimal.NewFromFloat(f).StringFixed(fractionSize)
	intPart, fracPart, _ := strings.Cut(s, decimalSep)
	return group(intPart) + decimalSep + fracPart, true
}

// MustFormat is Format for values already known to be numeric.
// It panics on absent results.
func MustFormat(v any) string {
	s, ok := Format(v)
	if !ok {
		panic("price: value is not a finite number")
	}
	return s
}

// group slices three characters off the end until fewer than four remain,
// then joins the slices back in reading order.
func group(s string) string {
	if len(s) <= groupSize {
		return s
	}

	var chunks []string
	for {
		chunks = append(chunks, s[len(s)-groupSize:])
		s = s[:len(s)-groupSize]
		if len(s) <= groupSize {
			break
		}
	}

	var b strings.Builder
	b.WriteString(s)
	for i := len(chunks) - 1; i >= 0; i-- {
		b.WriteString(groupSep)
		b.WriteString(chunks[i])
	}
	return b.String()
}

func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}
