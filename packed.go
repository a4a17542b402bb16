package unthbuf

var _ CellLayout = PackedLayout{}

// PackedLayout stores elements tightly packed across cell boundaries.
//
// The buffer is one logical bitstream: element i starts at absolute bit
// position i*bits. Nothing is padded, so an element may be split across two
// adjacent cells, with its low-order fragment at the top of the lower cell
// and the remaining high-order bits at the bottom of the next one.
type PackedLayout struct{}

func (PackedLayout) Name() string { return "packed" }

func (PackedLayout) Tag() byte { return 1 }

func (PackedLayout) CellCount(capacity int, bits Bits) int {
	return (capacity*int(bits) + BitsPerCell - 1) / BitsPerCell
}

func (PackedLayout) PaddingBitCount(capacity int, bits Bits) int {
	return 0
}

func (PackedLayout) LocationOf(index int, bits Bits) Location {
	bitIndex := index * int(bits)
	cell := bitIndex / BitsPerCell
	offset := uint8(bitIndex % BitsPerCell)
	loc := Location{
		Cell:   cell,
		Offset: offset,
		Mask:   bits.Mask() << offset,
	}
	if int(offset)+int(bits) > BitsPerCell {
		loc.HighBits = offset + uint8(bits) - BitsPerCell
		loc.HighMask = bits.Mask() >> (BitsPerCell - offset)
	}
	return loc
}
