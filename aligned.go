package unthbuf

var _ CellLayout = AlignedLayout{}

// AlignedLayout stores elements in groups within cell boundaries.
//
// Each cell holds floor(64/bits) elements; the highest-order leftover bits of
// every cell are padding and are never written. An element therefore never
// spans two cells, which keeps every access a single load or store.
type AlignedLayout struct{}

func (AlignedLayout) Name() string { return "aligned" }

func (AlignedLayout) Tag() byte { return 0 }

// ElementsPerCell returns how many elements of the given width fit in one cell.
func (AlignedLayout) ElementsPerCell(bits Bits) int {
	return BitsPerCell / int(bits)
}

func (l AlignedLayout) CellCount(capacity int, bits Bits) int {
	elpc := l.ElementsPerCell(bits)
	return (capacity + elpc - 1) / elpc
}

func (l AlignedLayout) PaddingBitCount(capacity int, bits Bits) int {
	elpc := l.ElementsPerCell(bits)
	perCell := BitsPerCell - elpc*int(bits)
	return perCell * l.CellCount(capacity, bits)
}

func (l AlignedLayout) LocationOf(index int, bits Bits) Location {
	elpc := l.ElementsPerCell(bits)
	cell := index / elpc
	offset := uint8(index%elpc) * uint8(bits)
	return Location{
		Cell:   cell,
		Offset: offset,
		Mask:   bits.Mask() << offset,
	}
}
