package unthbuf

// ValueIterator iterates over a sequence of element values.
type ValueIterator interface {
	// Next advances the iterator to the next element.
	// Returns true if an element is available, false if the sequence is
	// exhausted or an error occurred.
	Next() bool

	// Value returns the current element.
	// Should only be called after Next() returns true.
	Value() uint64

	// Error returns the first error encountered during iteration, if any.
	Error() error
}

// Iterator returns an iterator that yields all elements of this buffer in
// index order.
func (buf *Buf) Iterator() *BufIterator {
	return &BufIterator{buf: buf, idx: -1}
}

// BufIterator iterates over the elements of a Buf.
type BufIterator struct {
	buf *Buf
	idx int
}

func (it *BufIterator) Next() bool {
	if it.idx+1 >= it.buf.capacity {
		return false
	}
	it.idx++
	return true
}

func (it *BufIterator) Value() uint64 {
	return it.buf.GetUnchecked(it.idx)
}

func (it *BufIterator) Error() error {
	return nil
}

// Remaining returns the amount of elements not yet yielded.
func (it *BufIterator) Remaining() int {
	return it.buf.capacity - (it.idx + 1)
}

// SliceValueIterator adapts a slice of values to the ValueIterator interface.
type SliceValueIterator struct {
	values []uint64
	idx    int
}

func NewSliceValueIterator(values []uint64) *SliceValueIterator {
	return &SliceValueIterator{values: values, idx: -1}
}

func (it *SliceValueIterator) Next() bool {
	it.idx++
	return it.idx < len(it.values)
}

func (it *SliceValueIterator) Value() uint64 {
	return it.values[it.idx]
}

func (it *SliceValueIterator) Error() error {
	return nil
}
