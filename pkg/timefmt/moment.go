package timefmt

import (
	"math"
	"reflect"
	"time"
)

// Calendar exposes calendar fields in the value's own time zone.
// time.Time satisfies it.
type Calendar interface {
	Year() int
	Month() time.Month
	Day() int
	Hour() int
	Minute() int
	Second() int
	Weekday() time.Weekday
}

// Fields is the calendar record every formatter renders from.
// Month is 1-based and Weekday counts from Sunday = 0.
type Fields struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
}

type momentKind uint8

const (
	kindCalendar momentKind = iota + 1
	kindEpochMillis
)

// Moment is a tagged union of the two accepted temporal inputs:
// a Calendar value or epoch milliseconds.
type Moment struct {
	kind   momentKind
	cal    Calendar
	millis int64
}

// FromCalendar wraps a calendar value. A nil calendar produces an invalid Moment.
func FromCalendar(c Calendar) Moment {
	if c == nil || isNilPointer(c) {
		return Moment{}
	}
	return Moment{kind: kindCalendar, cal: c}
}

// FromMillis wraps milliseconds since the Unix epoch.
func FromMillis(ms int64) Moment {
	return Moment{kind: kindEpochMillis, millis: ms}
}

// Valid reports whether the moment holds one of the two variants.
func (m Moment) Valid() bool {
	return m.kind != 0
}

// Fields resolves the moment into calendar fields.
// Epoch millis use loc, falling back to time.Local when loc is nil.
// A time.Time is converted into loc only when loc is not nil.
func (m Moment) Fields(loc *time.Location) (Fields, bool) {
	switch m.kind {
	case kindEpochMillis:
		if loc == nil {
			loc = time.Local
		}
		return fieldsOf(time.UnixMilli(m.millis).In(loc)), true
	case kindCalendar:
		if loc != nil {
			switch t := m.cal.(type) {
			case time.Time:
				return fieldsOf(t.In(loc)), true
			case *time.Time:
				return fieldsOf(t.In(loc)), true
			}
		}
		return fieldsOf(m.cal), true
	default:
		return Fields{}, false
	}
}

// Normalize converts any accepted input into calendar fields.
// Accepted inputs are Moment, Calendar values, integers and integral floats
// (milliseconds). Everything else is reported as absent.
func Normalize(v any, loc *time.Location) (Fields, bool) {
	m, ok := toMoment(v)
	if !ok {
		return Fields{}, false
	}
	return m.Fields(loc)
}

func toMoment(v any) (Moment, bool) {
	switch x := v.(type) {
	case nil:
		return Moment{}, false
	case Moment:
		return x, x.Valid()
	case Calendar:
		m := FromCalendar(x)
		return m, m.Valid()
	case int:
		return FromMillis(int64(x)), true
	case int8:
		return FromMillis(int64(x)), true
	case int16:
		return FromMillis(int64(x)), true
	case int32:
		return FromMillis(int64(x)), true
	case int64:
		return FromMillis(x), true
	case uint:
		return fromUnsigned(uint64(x))
	case uint8:
		return FromMillis(int64(x)), true
	case uint16:
		return FromMillis(int64(x)), true
	case uint32:
		return FromMillis(int64(x)), true
	case uint64:
		return fromUnsigned(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	default:
		return Moment{}, false
	}
}

func fromUnsigned(u uint64) (Moment, bool) {
	if u > math.MaxInt64 {
		return Moment{}, false
	}
	return FromMillis(int64(u)), true
}

// fromFloat accepts only finite integral values that fit into int64.
func fromFloat(f float64) (Moment, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Moment{}, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return Moment{}, false
	}
	return FromMillis(int64(f)), true
}

func fieldsOf(c Calendar) Fields {
	return Fields{
		Year:    c.Year(),
		Month:   int(c.Month()),
		Day:     c.Day(),
		Hour:    c.Hour(),
		Minute:  c.Minute(),
		Second:  c.Second(),
		Weekday: c.Weekday(),
	}
}

func isNilPointer(c Calendar) bool {
	rv := reflect.ValueOf(c)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
