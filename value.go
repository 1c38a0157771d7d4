package wimey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agilira/go-errors"
)

// ValueKind enumerates the types an argument destination can hold. It governs how a bound token
// is coerced and stored.
type ValueKind int

const (
	// KindInvalid is the kind of the zero Destination. Binding through it fails with
	// ErrCodeUnknownValueType.
	KindInvalid ValueKind = iota
	// KindBool marks a presence flag: matching it stores true, no token is consumed.
	KindBool
	// KindInt stores a base-10 signed integer.
	KindInt
	// KindFloat stores a double-precision floating-point number.
	KindFloat
	// KindString stores a copy of the raw token.
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is the optional string value handed to a command callback. Commands matched without an
// adjacent value token receive an absent Value.
type Value struct {
	str string
	ok  bool
}

func someValue(s string) Value { return Value{str: s, ok: true} }

// Get returns the raw value and whether one was present.
func (v Value) Get() (string, bool) { return v.str, v.ok }

// Present reports whether a value token accompanied the command.
func (v Value) Present() bool { return v.ok }

// Or returns the raw value, or fallback when absent.
func (v Value) Or(fallback string) string {
	if v.ok {
		return v.str
	}
	return fallback
}

// Int64 coerces the value through [ToInt64]. An absent value is a conversion failure.
func (v Value) Int64() (int64, error) { return ToInt64(v.str) }

// Float64 coerces the value through [ToFloat64]. An absent value is a conversion failure.
func (v Value) Float64() (float64, error) { return ToFloat64(v.str) }

// Destination is where a matched argument writes its value. It pairs a caller-owned pointer
// with the kind tag that selects the coercion, so writes are type checked at registration time
// instead of going through unchecked casts. The zero Destination is invalid.
type Destination struct {
	kind ValueKind
	b    *bool
	i    *int64
	f    *float64
	s    *string
}

// BoolVar returns a destination that stores true when its flag is present.
func BoolVar(p *bool) Destination { return Destination{kind: KindBool, b: p} }

// Int64Var returns a destination that stores a parsed signed integer.
func Int64Var(p *int64) Destination { return Destination{kind: KindInt, i: p} }

// Float64Var returns a destination that stores a parsed double-precision float.
func Float64Var(p *float64) Destination { return Destination{kind: KindFloat, f: p} }

// StringVar returns a destination that stores a copy of the raw token.
func StringVar(p *string) Destination { return Destination{kind: KindString, s: p} }

// Kind returns the destination's value kind.
func (d Destination) Kind() ValueKind { return d.kind }

// store coerces token per the destination's kind and writes through the caller's pointer. A
// failed coercion leaves the pointee untouched. Bool destinations ignore the token and record
// presence.
func (d Destination) store(token string) error {
	switch d.kind {
	case KindBool:
		*d.b = true
	case KindInt:
		n, err := ToInt64(token)
		if err != nil {
			return err
		}
		*d.i = n
	case KindFloat:
		f, err := ToFloat64(token)
		if err != nil {
			return err
		}
		*d.f = f
	case KindString:
		*d.s = strings.Clone(token)
	default:
		return errors.New(ErrCodeUnknownValueType, fmt.Sprintf("unknown value kind %d", int(d.kind)))
	}
	return nil
}

// ToInt64 converts a base-10 token to a signed 64-bit integer. The entire token must be
// numeric; trailing characters, empty input and out-of-range values fail with
// ErrCodeConversion.
func ToInt64(val string) (int64, error) {
	if val == "" {
		return 0, errors.New(ErrCodeConversion, "cannot convert empty token to int")
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, ErrCodeConversion, "cannot convert "+strconv.Quote(val)+" to int")
	}
	return n, nil
}

// ToInt converts a base-10 token to an int, with the same failure conditions as [ToInt64]
// scoped to the platform int range.
func ToInt(val string) (int, error) {
	if val == "" {
		return 0, errors.New(ErrCodeConversion, "cannot convert empty token to int")
	}
	n, err := strconv.ParseInt(val, 10, strconv.IntSize)
	if err != nil {
		return 0, errors.Wrap(err, ErrCodeConversion, "cannot convert "+strconv.Quote(val)+" to int")
	}
	return int(n), nil
}

// ToUint64 converts a base-10 token to an unsigned 64-bit integer. Negative input is rejected.
func ToUint64(val string) (uint64, error) {
	if val == "" {
		return 0, errors.New(ErrCodeConversion, "cannot convert empty token to uint64")
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, ErrCodeConversion, "cannot convert "+strconv.Quote(val)+" to uint64")
	}
	return n, nil
}

// ToFloat64 converts a token to a double-precision float with strtod semantics: the longest
// leading prefix that parses as a number is consumed and trailing characters are tolerated.
// It fails with ErrCodeConversion only when no numeric prefix can be consumed at all.
func ToFloat64(val string) (float64, error) {
	f, err := parseFloatPrefix(val, 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}

// ToFloat32 is [ToFloat64] at single precision.
func ToFloat32(val string) (float32, error) {
	f, err := parseFloatPrefix(val, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// ToByte converts a token through the signed-integer path and narrows the result to a single
// byte, truncating like a C char cast. Failure conditions are those of [ToInt64].
func ToByte(val string) (byte, error) {
	n, err := ToInt64(val)
	if err != nil {
		return 0, err
	}
	return byte(n), nil
}

// parseFloatPrefix finds the longest prefix of val accepted by strconv.ParseFloat. Candidate
// prefixes are tried longest-first; tokens are short enough that the quadratic worst case does
// not matter.
func parseFloatPrefix(val string, bitSize int) (float64, error) {
	if val == "" {
		return 0, errors.New(ErrCodeConversion, "cannot convert empty token to float")
	}
	for end := len(val); end > 0; end-- {
		f, err := strconv.ParseFloat(val[:end], bitSize)
		if err == nil {
			return f, nil
		}
		// Out of range still consumes the prefix; strtod returns ±HUGE_VAL here.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, nil
		}
	}
	return 0, errors.New(ErrCodeConversion, "cannot convert "+strconv.Quote(val)+" to float")
}
