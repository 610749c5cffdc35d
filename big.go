package ordinal

import "math/big"

var hundred = big.NewInt(100)

// Big is Ordinal for arbitrary-precision integers. It keeps its own copy of
// the integer, so changing the *big.Int passed to OfBig afterwards has no
// effect. The zero value prints as "0th".
type Big struct {
	value *big.Int
}

// OfBig wraps a copy of x. A nil x is treated as zero.
func OfBig(x *big.Int) Big {
	if x == nil {
		return Big{}
	}
	return Big{value: new(big.Int).Set(x)}
}

// Value returns a copy of the wrapped integer.
func (b Big) Value() *big.Int {
	if b.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.value)
}

func (b Big) String() string {
	return string(b.appendOrdinal(nil))
}

func (b Big) Suffix() string {
	if b.value == nil {
		return suffixOf(0)
	}
	r := new(big.Int).Rem(b.value, hundred)
	return suffixOf(uint8(r.Abs(r).Uint64()))
}

func (b Big) AppendText(buf []byte) ([]byte, error) {
	return b.appendOrdinal(buf), nil
}

func (b Big) MarshalText() ([]byte, error) {
	return b.AppendText(nil)
}

func (b Big) appendOrdinal(buf []byte) []byte {
	if b.value == nil {
		buf = append(buf, '0')
	} else {
		buf = b.value.Append(buf, 10)
	}
	return append(buf, b.Suffix()...)
}
