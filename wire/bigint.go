package wire

import (
	"math/big"

	"github.com/jxon-dev/jxon/internal/cursor"
)

// AppendBigInt appends an arbitrary-precision integer as a sign byte, a
// narrowest-encoded non-negative byte length, then that many big-endian
// magnitude bytes.
//
// This is the BigInt field layout used inside the BigFloat (0xF9) family
// for its numerator and denominator. spec.md leaves the generic 0xE BigInt
// width class's byte layout as "variable" and unimplemented for plain
// integers (see ReadInt); BigFloat's two BigInt sub-fields get their own
// self-delimiting layout here since 0xF9 is a fixed head, not part of the
// width-nibble grammar.
func AppendBigInt(buf []byte, v *big.Int) []byte {
	sign := byte(0)
	if v.Sign() < 0 {
		sign = 1
	}

	buf = append(buf, sign)

	mag := v.Bytes()
	buf = AppendLength(buf, 0x00, len(mag))

	return append(buf, mag...)
}

// ReadBigInt reads a BigInt field written by AppendBigInt.
func ReadBigInt(c *cursor.Cursor) (*big.Int, error) {
	sign, err := c.ReadByte()
	if err != nil {
		return nil, err
	}

	lenHead, err := c.ReadByte()
	if err != nil {
		return nil, err
	}

	n, err := ReadLength(c, lenHead)
	if err != nil {
		return nil, err
	}

	mag, err := c.ReadN(n)
	if err != nil {
		return nil, err
	}

	v := new(big.Int).SetBytes(mag)
	if sign == 1 {
		v.Neg(v)
	}

	return v, nil
}
