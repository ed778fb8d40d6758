// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

// RelArray is a view of a relative array stored inside an arena: an
// unsigned element count followed immediately by a RelPtr to the first
// element, both of the same width O. The array is a sequence of Len()
// contiguous elements starting at the pointer's target; it is empty iff
// the count is zero.
//
// Iteration is plain position arithmetic with no per-step re-validation;
// soundness rests entirely on the count and target being correct at
// construction time.
type RelArray[O Offset] struct {
	buf    []byte
	pos    int
	stride int
}

type (
	RelArray8  = RelArray[int8]
	RelArray16 = RelArray[int16]
	RelArray32 = RelArray[int32]
	RelArray64 = RelArray[int64]
)

// NewRelArray returns a view of the relative array stored at pos in buf
// (count field at pos, element pointer right after), stride one byte.
func NewRelArray[O Offset](buf []byte, pos int) RelArray[O] {
	return NewRelArrayStride[O](buf, pos, 1)
}

// NewRelArrayStride is NewRelArray with an explicit element-pointer
// stride.
func NewRelArrayStride[O Offset](buf []byte, pos int, stride int) RelArray[O] {
	w := offsetWidth[O]()
	assertf(stride > 0, "relative array stride must be positive, got %d", stride)
	assertf(pos >= 0 && pos+2*w <= len(buf),
		"relative array fields [%d,%d) outside arena of %d bytes", pos, pos+2*w, len(buf))
	return RelArray[O]{buf: buf, pos: pos, stride: stride}
}

// Size in bytes of the two fields of a RelArray[O] inside an arena.
func RelArrayFieldSize[O Offset]() int { return 2 * offsetWidth[O]() }

// Ptr returns the view of the embedded element pointer.
func (a RelArray[O]) Ptr() RelPtr[O] {
	return RelPtr[O]{buf: a.buf, pos: a.pos + offsetWidth[O](), stride: a.stride}
}

// Len returns the element count.
func (a RelArray[O]) Len() int {
	w := offsetWidth[O]()
	var u uint64
	for i := 0; i < w; i++ {
		u |= uint64(a.buf[a.pos+i]) << (8 * i)
	}
	return int(u)
}

// SetLen stores the element count. Counts that do not fit the unsigned
// width are programmer errors.
func (a RelArray[O]) SetLen(n int) {
	w := offsetWidth[O]()
	maxCount := uint64(1)<<(8*w) - 1
	assertf(n >= 0 && uint64(n) <= maxCount,
		"relative array count %d outside [0,%d]; widen the count type", n, maxCount)
	u := uint64(n)
	for i := 0; i < w; i++ {
		a.buf[a.pos+i] = byte(u >> (8 * i))
	}
}

// IsEmpty reports whether the count is zero.
func (a RelArray[O]) IsEmpty() bool { return a.Len() == 0 }

// Assign points the array at count elements starting at target.
func (a RelArray[O]) Assign(target, count int) {
	a.Ptr().Assign(target)
	a.SetLen(count)
}

// AssignNil empties the array and nulls its element pointer.
func (a RelArray[O]) AssignNil() {
	a.Ptr().AssignNil()
	a.SetLen(0)
}

// At returns the arena position of element i, given the element size in
// bytes. Indexing a null array or out of range is a programmer error.
func (a RelArray[O]) At(i, elemSize int) int {
	begin, ok := a.Ptr().Get()
	assertf(ok, "indexing a null relative array")
	assertf(i >= 0 && i < a.Len(), "relative array index %d out of range [0,%d)", i, a.Len())
	return begin + i*elemSize
}

// Span returns the [begin, end) arena positions covering all elements,
// given the element size in bytes. It reports false for a null array; an
// empty non-null array yields begin == end.
func (a RelArray[O]) Span(elemSize int) (begin, end int, ok bool) {
	begin, ok = a.Ptr().Get()
	if !ok {
		return 0, 0, false
	}
	return begin, begin + a.Len()*elemSize, true
}
