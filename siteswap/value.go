package siteswap

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies the scalar type carried by a Value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is a scalar parameter value: a string, a number, or a boolean.
type Value struct {
	kind Kind
	str  string
	num  float64
	bit  bool
	// raw is the number as written when that differs from its canonical
	// form, e.g. "015" or "1_2".
	raw string
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric Value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// numberText returns a numeric Value that keeps the author's spelling.
func numberText(n float64, raw string) Value {
	v := Number(n)
	if raw != formatNumber(n) {
		v.raw = raw
	}
	return v
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, bit: b}
}

// Kind reports the scalar type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the canonical text form used on the wire.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		if v.raw != "" {
			return v.raw
		}
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.bit)
	default:
		return v.str
	}
}

// Float returns the numeric interpretation of v. Strings holding a decimal
// number are accepted; booleans are not. Numbers written with a leading zero
// read as decimal.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if v.raw != "" {
			if f, err := strconv.ParseFloat(v.raw, 64); err == nil {
				return f, true
			}
		}
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Equal compares canonical text forms, so Number(400) equals String("400").
func (v Value) Equal(other Value) bool {
	return v.String() == other.String()
}

// MarshalJSON encodes v as the matching JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		n, _ := v.Float()
		return json.Marshal(n)
	case KindBool:
		return json.Marshal(v.bit)
	default:
		return json.Marshal(v.str)
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
