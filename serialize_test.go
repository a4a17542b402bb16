package unthbuf

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestSerializeDeserialize(t *testing.T) {
	t.Parallel()

	for _, layout := range layoutsUnderTest {
		bits := MustBits(37)
		original := New(layout, bits, 200)
		for index, value := range randomValues(original.Len(), original.Mask()) {
			require.NoError(t, original.Set(index, value))
		}

		data, err := original.Serialize()
		require.NoError(t, err)
		require.Len(t, data, original.ByteSize())

		var decoded Buf
		require.NoError(t, Deserialize(data, &decoded))

		require.Equal(t, original.Len(), decoded.Len())
		require.Equal(t, original.Bits(), decoded.Bits())
		require.Equal(t, original.Layout().Tag(), decoded.Layout().Tag())
		require.Equal(t, original.Mask(), decoded.Mask())
		require.True(t, slices.Equal(original.Raw(), decoded.Raw()), "cell mismatch")

		for index := 0; index < original.Len(); index++ {
			want, _ := original.Get(index)
			got, _ := decoded.Get(index)
			require.Equal(t, want, got, "element mismatch at index %d", index)
		}

		require.Equal(t, original.Hash(), decoded.Hash())
	}
}

func TestSerializeHashDistinguishesLayouts(t *testing.T) {
	t.Parallel()

	// Same logical values, different layouts: the frames must differ, since
	// the two layouts produce non-interchangeable bit patterns.
	values := []uint64{1, 2, 3, 4, 5, 30, 31}
	aligned, err := NewFromSlice(Aligned, MustBits(5), values)
	require.NoError(t, err)
	packed, err := NewFromSlice(Packed, MustBits(5), values)
	require.NoError(t, err)

	require.NotEqual(t, aligned.Hash(), packed.Hash())
}

func TestDeserialize_InvalidData(t *testing.T) {
	t.Parallel()

	var buf Buf

	require.Error(t, Deserialize([]byte{}, &buf), "expected error for empty data")
	require.Error(t, Deserialize(make([]byte, 8), &buf), "expected error for short data")

	good, err := New(Packed, MustBits(5), 100).Serialize()
	require.NoError(t, err)

	bad := slices.Clone(good)
	bad[0] = 'X'
	require.Error(t, Deserialize(bad, &buf), "expected error for bad magic")

	bad = slices.Clone(good)
	bad[4] = 99
	require.Error(t, Deserialize(bad, &buf), "expected error for unsupported version")

	bad = slices.Clone(good)
	bad[5] = 7
	require.Error(t, Deserialize(bad, &buf), "expected error for unknown layout tag")

	bad = slices.Clone(good)
	bad[6] = 0
	require.Error(t, Deserialize(bad, &buf), "expected error for zero width")

	bad = slices.Clone(good)
	bad[6] = 11 // width changes the required cell count
	require.Error(t, Deserialize(bad, &buf), "expected error for cell count mismatch")

	require.Error(t, Deserialize(good[:len(good)-1], &buf), "expected error for truncated cells")

	bad = append(slices.Clone(good), 0)
	require.Error(t, Deserialize(bad, &buf), "expected error for trailing bytes")
}

func TestDeserialize_HeaderOverflow(t *testing.T) {
	t.Parallel()

	// A frame whose capacity would overflow the cell-count arithmetic must be
	// rejected outright. Otherwise capacity*bits wraps to a tiny cell count,
	// every header check passes, and the decoded buffer claims indices it has
	// no cells for.
	craft := func(tag byte, bits byte, capacity, cellCount uint64) []byte {
		frame := make([]byte, headerSize)
		copy(frame, serializeMagic[:])
		frame[4] = serializeVersion
		frame[5] = tag
		frame[6] = bits
		binary.LittleEndian.PutUint64(frame[7:], capacity)
		binary.LittleEndian.PutUint64(frame[15:], cellCount)
		return frame
	}

	var buf Buf

	// Packed: 1<<58 * 64 wraps to 0 in 64-bit arithmetic.
	err := Deserialize(craft(Packed.Tag(), 64, 1<<58, 0), &buf)
	require.Error(t, err)
	require.Equal(t, 0, buf.Len(), "failed deserialize must not populate the buffer")

	// Aligned with 1-bit elements: capacity+63 wraps during the ceiling division.
	err = Deserialize(craft(Aligned.Tag(), 1, math.MaxInt64-10, 0), &buf)
	require.Error(t, err)
	require.Equal(t, 0, buf.Len())

	// Capacity beyond int range entirely.
	err = Deserialize(craft(Packed.Tag(), 8, math.MaxUint64, 0), &buf)
	require.Error(t, err)
	require.Equal(t, 0, buf.Len())
}
