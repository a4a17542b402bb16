package unthbuf

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/Longor1996/unthbuf/errutil"
)

// Serialized frame, all little-endian:
//
//	magic "UNTB" | version u8 | layout tag u8 | bits u8 | capacity u64 | cell count u64 | cells...
//
// The layout tag, bits and capacity travel with the cells because the raw
// cell array does not self-describe them; the same cells decode to different
// value sequences under different parameters.

const serializeVersion = 1

var serializeMagic = [4]byte{'U', 'N', 'T', 'B'}

const headerSize = 4 + 1 + 1 + 1 + 8 + 8

// ByteSize returns the size of the serialized form of this buffer, in bytes.
func (buf *Buf) ByteSize() int {
	return headerSize + len(buf.data)*8
}

// Serialize encodes the buffer, including its construction parameters, into
// a self-describing little-endian byte frame.
func (buf *Buf) Serialize() ([]byte, error) {
	out := make([]byte, buf.ByteSize())
	offset := 0

	copy(out[offset:], serializeMagic[:])
	offset += 4

	out[offset] = serializeVersion
	offset++

	out[offset] = buf.layout.Tag()
	offset++

	out[offset] = byte(buf.bits)
	offset++

	binary.LittleEndian.PutUint64(out[offset:], uint64(buf.capacity))
	offset += 8

	binary.LittleEndian.PutUint64(out[offset:], uint64(len(buf.data)))
	offset += 8

	for _, cell := range buf.data {
		binary.LittleEndian.PutUint64(out[offset:], cell)
		offset += 8
	}

	return out, nil
}

// Deserialize decodes a frame produced by Serialize into buf, replacing its
// contents entirely.
func Deserialize(data []byte, buf *Buf) error {
	if len(data) < headerSize {
		return errors.New("unthbuf: data too short for header")
	}

	offset := 0
	if [4]byte(data[offset:offset+4]) != serializeMagic {
		return errors.New("unthbuf: bad magic")
	}
	offset += 4

	if data[offset] != serializeVersion {
		return errors.New("unthbuf: unsupported version")
	}
	offset++

	layout, err := LayoutByTag(data[offset])
	if err != nil {
		return err
	}
	offset++

	bits, err := NewBits(uint(data[offset]))
	if err != nil {
		return err
	}
	offset++

	capacity := int(binary.LittleEndian.Uint64(data[offset:]))
	offset += 8

	cellCount := int(binary.LittleEndian.Uint64(data[offset:]))
	offset += 8

	// Bound capacity before handing it to the layout formulas: both
	// capacity*bits (packed) and capacity+elpc-1 (aligned) must stay within
	// int, or a crafted frame could overflow the cell count to a small value
	// and decode into a buffer with fewer cells than its indices address.
	if capacity < 0 || capacity > (math.MaxInt-BitsPerCell)/int(bits) {
		return errors.New("unthbuf: capacity out of range")
	}
	if cellCount != layout.CellCount(capacity, bits) {
		return errors.New("unthbuf: cell count does not match capacity and width")
	}
	if len(data) != headerSize+cellCount*8 {
		return errors.New("unthbuf: data length does not match cell count")
	}

	cells := make([]uint64, cellCount)
	for i := range cells {
		cells[i] = binary.LittleEndian.Uint64(data[offset:])
		offset += 8
	}

	buf.capacity = capacity
	buf.data = cells
	buf.bits = bits
	buf.mask = bits.Mask()
	buf.layout = layout
	return nil
}

// Hash returns an xxh3 digest over the serialized frame, covering both the
// construction parameters and the cell content.
func (buf *Buf) Hash() uint64 {
	data, err := buf.Serialize()
	errutil.FatalIf(err)
	return xxh3.Hash(data)
}
