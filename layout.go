package unthbuf

import (
	"errors"
	"fmt"
)

// CellLayout decides how elements are arranged within the cells of a Buf.
//
// A layout is pure arithmetic: it translates a logical element index into
// physical cell/bit coordinates and never touches storage itself. It is
// chosen once at construction and never switched for a given buffer.
type CellLayout interface {
	// Name returns a short human-readable name of the layout.
	Name() string

	// Tag returns the stable byte identifying this layout in serialized form.
	Tag() byte

	// CellCount returns the minimum amount of cells needed to fit
	// capacity × bits under this layout.
	CellCount(capacity int, bits Bits) int

	// PaddingBitCount returns the total amount of bits that can never hold
	// element data in a buffer of the given capacity and width.
	PaddingBitCount(capacity int, bits Bits) int

	// LocationOf calculates the exact location of the given index.
	//
	// The index is not required to be valid for this operation; the caller
	// (Buf) is the bounds-check authority.
	LocationOf(index int, bits Bits) Location
}

// Aligned is the layout that stores elements in groups *within* cell
// boundaries, wasting any leftover bits of each cell as padding.
var Aligned CellLayout = AlignedLayout{}

// Packed is the layout that stores elements tightly packed *across* cell
// boundaries, with zero padding.
var Packed CellLayout = PackedLayout{}

// LayoutByTag resolves a serialized layout tag back to its layout.
func LayoutByTag(tag byte) (CellLayout, error) {
	switch tag {
	case AlignedLayout{}.Tag():
		return Aligned, nil
	case PackedLayout{}.Tag():
		return Packed, nil
	default:
		return nil, errors.New("unthbuf: unknown layout tag")
	}
}

// Location is the physical position of one element within the cell array,
// together with the precomputed masks to extract or insert it.
//
// The value's low-order bits live in cell Cell, starting at bit Offset,
// under Mask. When the element spans a cell boundary, its top HighBits bits
// carry into the low end of cell Cell+1 under HighMask; otherwise HighMask
// is zero and the element sits entirely within Cell.
type Location struct {
	Cell     int
	Offset   uint8
	Mask     uint64
	HighMask uint64
	HighBits uint8
}

// IsSpanning reports whether the element is split across two adjacent cells.
func (l Location) IsSpanning() bool {
	return l.HighMask != 0
}

func (l Location) String() string {
	if !l.IsSpanning() {
		return fmt.Sprintf("[#%d <<%d &%b]", l.Cell, l.Offset, l.Mask)
	}
	return fmt.Sprintf("[#%d <<l%d h%d &l%b h%b]", l.Cell, l.Offset, l.HighBits, l.Mask, l.HighMask)
}
