// Package unthbuf provides a fixed-capacity buffer of unsigned integer
// elements whose bit-size is chosen once at construction, packed
// contiguously into an array of 64-bit cells.
//
// Two cell layouts exist: Aligned never lets an element span a cell boundary
// and pads each cell, while Packed stores elements as one gapless bitstream
// and splits boundary-crossing elements across two cells.
//
// Within a cell, an element's low-order bit sits at the lowest unused bit
// position of its target region and cells fill from their low-order end
// upward. Both layouts apply this convention on read and write, so the raw
// cells are a stable contract if they are ever persisted or transmitted.
//
// A Buf is not synchronized; sharing one across goroutines with a writer
// requires external mutual exclusion.
package unthbuf

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"

	"github.com/Longor1996/unthbuf/errutil"
)

var (
	// ErrIndexOutOfBounds is returned by Get and Set for indices >= Len.
	ErrIndexOutOfBounds = errors.New("unthbuf: index is out of bounds")

	// ErrValueTooWide is returned by Set when the value does not fit the
	// element width.
	ErrValueTooWide = errors.New("unthbuf: value does not fit element width")
)

// Buf is a fixed buffer of bits-sized unsigned integer elements.
//
// The cell array is allocated once at construction, sized exactly for
// capacity elements under the chosen layout, and never resized.
type Buf struct {
	// Capacity of the buffer, in elements.
	capacity int

	// Buffer of cells, containing bits-sized unsigned integer elements.
	data []uint64

	// Bit-size of an individual element in data.
	bits Bits

	// Mask of bits covering a single element.
	mask uint64

	// Cell layout; fixed for the lifetime of the buffer.
	layout CellLayout
}

// New creates a zero-filled buffer of capacity elements, each bits wide,
// arranged by the given layout. A zero capacity yields an inert empty buffer.
func New(layout CellLayout, bits Bits, capacity int) *Buf {
	if capacity < 0 {
		panic("unthbuf: negative capacity")
	}
	return &Buf{
		capacity: capacity,
		data:     make([]uint64, layout.CellCount(capacity, bits)),
		bits:     bits,
		mask:     bits.Mask(),
		layout:   layout,
	}
}

// NewWithDefault creates a buffer filled with defaultValue.
func NewWithDefault(layout CellLayout, bits Bits, capacity int, defaultValue uint64) (*Buf, error) {
	buf := New(layout, bits, capacity)
	if err := buf.Fill(defaultValue); err != nil {
		return nil, err
	}
	return buf, nil
}

// NewFromSlice creates a buffer holding exactly the given values.
func NewFromSlice[T constraints.Unsigned](layout CellLayout, bits Bits, values []T) (*Buf, error) {
	buf := New(layout, bits, len(values))
	for index, value := range values {
		if err := buf.Set(index, uint64(value)); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// Len returns the fixed amount of elements this buffer holds.
func (buf *Buf) Len() int {
	return buf.capacity
}

// Bits returns the bit-size of the individual elements in this buffer.
func (buf *Buf) Bits() Bits {
	return buf.bits
}

// Layout returns the cell layout of this buffer.
func (buf *Buf) Layout() CellLayout {
	return buf.layout
}

// Mask returns the bitmask used to check whether elements fit this buffer.
func (buf *Buf) Mask() uint64 {
	return buf.mask
}

// CanElementFit reports whether the given value is representable in this
// buffer's element width.
func (buf *Buf) CanElementFit(value uint64) bool {
	return value&buf.mask == value
}

// IsIndex reports whether the given index is valid for this buffer.
func (buf *Buf) IsIndex(index int) bool {
	return index >= 0 && index < buf.capacity
}

// IsCell reports whether the given cell-id points inside the backing buffer.
func (buf *Buf) IsCell(cell int) bool {
	return cell >= 0 && cell < len(buf.data)
}

// LocationOf returns the physical location of the element at the given index.
func (buf *Buf) LocationOf(index int) Location {
	return buf.layout.LocationOf(index, buf.bits)
}

// Get returns the element at the given index.
func (buf *Buf) Get(index int) (uint64, error) {
	if !buf.IsIndex(index) {
		return 0, ErrIndexOutOfBounds
	}
	return buf.GetUnchecked(index), nil
}

// GetUnchecked returns the element at the given index without checking
// bounds. The caller must guarantee IsIndex(index).
func (buf *Buf) GetUnchecked(index int) uint64 {
	loc := buf.layout.LocationOf(index, buf.bits)
	errutil.BugOn(!buf.IsCell(loc.Cell), "cell %d of index %d is out of bounds", loc.Cell, index)

	value := (buf.data[loc.Cell] & loc.Mask) >> loc.Offset
	if loc.HighMask != 0 {
		high := buf.data[loc.Cell+1] & loc.HighMask
		value |= high << (uint8(buf.bits) - loc.HighBits)
	}
	return value
}

// Set stores the given value at the given index.
//
// Both checks happen before any cell is touched, so a failed Set leaves the
// buffer unchanged.
func (buf *Buf) Set(index int, value uint64) error {
	if !buf.IsIndex(index) {
		return ErrIndexOutOfBounds
	}
	if !buf.CanElementFit(value) {
		return ErrValueTooWide
	}
	buf.SetUnchecked(index, value)
	return nil
}

// SetUnchecked stores the given value at the given index without checking
// bounds or width. The caller must guarantee IsIndex(index) and
// CanElementFit(value).
func (buf *Buf) SetUnchecked(index int, value uint64) {
	loc := buf.layout.LocationOf(index, buf.bits)
	errutil.BugOn(!buf.IsCell(loc.Cell), "cell %d of index %d is out of bounds", loc.Cell, index)

	cell := buf.data[loc.Cell]
	cell &^= loc.Mask
	cell |= value << loc.Offset
	buf.data[loc.Cell] = cell

	if loc.HighMask != 0 {
		high := buf.data[loc.Cell+1]
		high &^= loc.HighMask
		high |= value >> (uint8(buf.bits) - loc.HighBits)
		buf.data[loc.Cell+1] = high
	}
}

// Fill sets every element of the buffer to the given value.
func (buf *Buf) Fill(value uint64) error {
	if !buf.CanElementFit(value) {
		return ErrValueTooWide
	}
	if value == 0 {
		buf.Clear()
		return nil
	}
	for index := 0; index < buf.capacity; index++ {
		buf.SetUnchecked(index, value)
	}
	return nil
}

// Clear sets every element to zero. This is a memset and very fast.
func (buf *Buf) Clear() {
	clear(buf.data)
}

// FillFrom stores values from the iterator at indices 0, 1, ... until either
// the buffer or the iterator is exhausted. It returns the amount of elements
// written.
func (buf *Buf) FillFrom(it ValueIterator) (int, error) {
	index := 0
	for index < buf.capacity && it.Next() {
		if err := buf.Set(index, it.Value()); err != nil {
			return index, err
		}
		index++
	}
	return index, it.Error()
}

// Raw returns the backing buffer of cells. Mutating it bypasses all checks.
func (buf *Buf) Raw() []uint64 {
	return buf.data
}

// RawLen returns the length of the backing buffer, in cells.
func (buf *Buf) RawLen() int {
	return len(buf.data)
}

// RawByteLen returns the length of the backing buffer, in bytes.
func (buf *Buf) RawByteLen() int {
	return len(buf.data) * (BitsPerCell / 8)
}

// TotalBitCount returns the total amount of bits held by the backing cells,
// including padding.
func (buf *Buf) TotalBitCount() int {
	return len(buf.data) * BitsPerCell
}

// PaddingBitCount returns the amount of bits that can never hold element
// data. Always zero for the Packed layout.
func (buf *Buf) PaddingBitCount() int {
	return buf.layout.PaddingBitCount(buf.capacity, buf.bits)
}

// ExactBitCount returns the amount of bits that are available for element
// data, excluding any padding.
func (buf *Buf) ExactBitCount() int {
	return buf.TotalBitCount() - buf.PaddingBitCount()
}

func (buf *Buf) String() string {
	return fmt.Sprintf("Buf(%s, %d elems × %d bits, %d cells, %s)",
		buf.layout.Name(), buf.capacity, buf.bits, len(buf.data),
		humanize.IBytes(uint64(buf.RawByteLen())))
}
