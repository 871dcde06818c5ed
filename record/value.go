/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package record

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the zero Value.
	KindNull Kind = iota
	// KindNumber holds a float64.
	KindNumber
	// KindString holds a string.
	KindString
	// KindBool holds a bool.
	KindBool
	// KindDateTime holds an strfmt.DateTime.
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	default:
		return "null"
	}
}

// Value is an immutable tagged value carried by record fields.
// The zero Value is null. Values are comparable and safe to use as map keys.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	dt   strfmt.DateTime
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// DateTime returns a datetime Value.
func DateTime(dt strfmt.DateTime) Value {
	return Value{kind: KindDateTime, dt: dt}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Number returns the numeric payload. It is zero unless Kind is KindNumber.
func (v Value) Number() float64 {
	return v.num
}

// Str returns the string payload. It is empty unless Kind is KindString.
func (v Value) Str() string {
	return v.str
}

// Bool returns the boolean payload. It is false unless Kind is KindBool.
func (v Value) Bool() bool {
	return v.b
}

// DateTime returns the datetime payload. It is zero unless Kind is KindDateTime.
func (v Value) DateTime() strfmt.DateTime {
	return v.dt
}

// Float64 returns the numeric interpretation of v.
// Numbers convert directly; strings convert when they parse as a float.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is numeric-typed: a number, or a string
// that parses as one.
func (v Value) IsNumeric() bool {
	_, ok := v.Float64()
	return ok
}

// Equal reports strict equality: kinds and payloads both match.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindDateTime:
		return time.Time(v.dt).Equal(time.Time(o.dt))
	default:
		return true
	}
}

// LooseEqual compares two values under the change-detection rule: when
// both operands are numeric-typed they compare numerically, so "5" and
// 5 are equal; otherwise the comparison is strict.
func LooseEqual(a, b Value) bool {
	af, aok := a.Float64()
	bf, bok := b.Float64()
	if aok && bok {
		return af == bf
	}
	return a.Equal(b)
}

// Normalize converts a numeric string into its number form and returns
// every other value unchanged. Identity values are exposed normalized.
func (v Value) Normalize() Value {
	if v.kind == KindString {
		if f, ok := v.Float64(); ok {
			return Number(f)
		}
	}
	return v
}

// Key returns the canonical index-key string for v. Numeric strings
// share a key with their number form, so identity "5" and identity 5
// address the same slot.
func (v Value) Key() string {
	if f, ok := v.Float64(); ok {
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	switch v.kind {
	case KindString:
		return "s:" + v.str
	case KindBool:
		return "b:" + strconv.FormatBool(v.b)
	case KindDateTime:
		return "t:" + v.dt.String()
	default:
		return "null"
	}
}

// String renders v for display and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDateTime:
		return v.dt.String()
	default:
		return "null"
	}
}

// FromAny converts a loosely-typed Go value into a Value.
// Supported inputs are nil, bool, string, the numeric kinds produced by
// decoders (int, int32, int64, float32, float64), time.Time and
// strfmt.DateTime.
func FromAny(in any) (Value, error) {
	switch x := in.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case time.Time:
		return DateTime(strfmt.DateTime(x)), nil
	case strfmt.DateTime:
		return DateTime(x), nil
	case Value:
		return x, nil
	default:
		return Null(), fmt.Errorf("record: unsupported value type %T", in)
	}
}
