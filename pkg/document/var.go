package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies what a Var holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindString
	KindNumber
	KindBool
)

// Var is a scalar property value: a string, a number or a bool.
// The zero Var holds nothing.
type Var struct {
	kind Kind
	str  string
	num  float64
}

// String returns a string Var.
func String(s string) Var { return Var{kind: KindString, str: s} }

// Number returns a numeric Var.
func Number(n float64) Var { return Var{kind: KindNumber, num: n} }

// Int returns a numeric Var holding an integer.
func Int(n int) Var { return Var{kind: KindNumber, num: float64(n)} }

// Bool returns a boolean Var.
func Bool(b bool) Var {
	if b {
		return Var{kind: KindBool, num: 1}
	}
	return Var{kind: KindBool}
}

// Of converts a decoded value (string, bool, any integer or float type) into
// a Var. Other types are rendered with fmt-style formatting as strings.
func Of(v any) Var {
	switch x := v.(type) {
	case Var:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case nil:
		return Var{}
	default:
		return String(fmt.Sprint(x))
	}
}

// Kind returns what the Var holds.
func (v Var) Kind() Kind { return v.kind }

// IsNone reports whether the Var is empty.
func (v Var) IsNone() bool { return v.kind == KindNone }

// String renders the value as text. Numbers use the shortest round-trip form.
func (v Var) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	default:
		return ""
	}
}

// Float returns the numeric value. Strings are parsed; booleans map to 0/1.
func (v Var) Float() (float64, bool) {
	switch v.kind {
	case KindNumber, KindBool:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool returns the boolean value. Numbers are true when non-zero; strings
// accept the forms understood by strconv.ParseBool.
func (v Var) Bool() (bool, bool) {
	switch v.kind {
	case KindBool, KindNumber:
		return v.num != 0, true
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.str))
		return b, err == nil
	default:
		return false, false
	}
}

// Equal reports whether two Vars hold the same kind and value.
func (v Var) Equal(other Var) bool {
	return v == other
}

// Interface returns the value as a plain Go value for encoders.
func (v Var) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.num != 0
	default:
		return nil
	}
}
