// Package ordinal formats integers as English ordinal numbers such as 1st,
// 22nd, 113th or -1st.
package ordinal

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Ordinal wraps an integer so it prints as an ordinal number. Construct one
// with Of. The zero value prints as "0th".
type Ordinal[T constraints.Integer] struct {
	value T
}

func Of[T constraints.Integer](v T) Ordinal[T] {
	return Ordinal[T]{value: v}
}

// Format is shorthand for Of(v).String().
func Format[T constraints.Integer](v T) string {
	return Of(v).String()
}

// Suffix returns only the ordinal suffix of v: "st", "nd", "rd" or "th".
func Suffix[T constraints.Integer](v T) string {
	return Of(v).Suffix()
}

// Value returns the wrapped integer.
func (o Ordinal[T]) Value() T {
	return o.value
}

// Int64 returns the wrapped integer as an int64. ok is false if it does not
// fit.
func (o Ordinal[T]) Int64() (v int64, ok bool) {
	if o.value > 0 && uint64(o.value) > math.MaxInt64 {
		return 0, false
	}
	return int64(o.value), true
}

// Uint64 returns the wrapped integer as a uint64. ok is false for negative
// values.
func (o Ordinal[T]) Uint64() (v uint64, ok bool) {
	if o.value < 0 {
		return 0, false
	}
	return uint64(o.value), true
}

// String renders the value in decimal followed by its suffix. Negative values
// keep their sign and take the suffix of their magnitude.
func (o Ordinal[T]) String() string {
	return string(o.appendOrdinal(make([]byte, 0, 24)))
}

// Suffix returns "st", "nd", "rd" or "th" for the wrapped integer.
func (o Ordinal[T]) Suffix() string {
	// The remainder is always within (-100, 100), so negating it can't
	// overflow even for the minimum value of a signed type.
	r := o.value % 100
	if r < 0 {
		r = -r
	}
	return suffixOf(uint8(r))
}

// AppendText appends the rendered ordinal to b. The error is always nil.
func (o Ordinal[T]) AppendText(b []byte) ([]byte, error) {
	return o.appendOrdinal(b), nil
}

func (o Ordinal[T]) MarshalText() ([]byte, error) {
	return o.AppendText(nil)
}

func (o Ordinal[T]) appendOrdinal(b []byte) []byte {
	if o.value < 0 {
		b = strconv.AppendInt(b, int64(o.value), 10)
	} else {
		b = strconv.AppendUint(b, uint64(o.value), 10)
	}
	return append(b, o.Suffix()...)
}

// suffixOf expects the last two decimal digits of a magnitude.
func suffixOf(lastTwo uint8) string {
	// Special cases
	switch lastTwo {
	case 11, 12, 13:
		return "th"
	}

	// Match on single digits
	switch lastTwo % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
