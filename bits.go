package unthbuf

import "errors"

// BitsPerCell is the amount of bits a single cell can hold.
const BitsPerCell = 64

// ErrInvalidWidth is returned when a bit width outside [1, 64] is requested.
var ErrInvalidWidth = errors.New("unthbuf: bit width must be in range [1, 64]")

// Bits is the validated bit-size of individual elements in a Buf.
// It is always in the range [1, 64]: a 0-bit element has no representable
// values, and an element wider than one cell cannot be bounded by a single
// carry into the next cell.
type Bits uint8

// NewBits validates the given width.
func NewBits(width uint) (Bits, error) {
	if width == 0 || width > BitsPerCell {
		return 0, ErrInvalidWidth
	}
	return Bits(width), nil
}

// MustBits is NewBits for widths known to be valid; it panics otherwise.
func MustBits(width uint) Bits {
	b, err := NewBits(width)
	if err != nil {
		panic(err)
	}
	return b
}

// Mask returns the LSB-first bitmask covering a single element of this width.
func (b Bits) Mask() uint64 {
	if b == BitsPerCell {
		return ^uint64(0)
	}
	return (uint64(1) << b) - 1
}
