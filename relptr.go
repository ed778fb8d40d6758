// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

import "unsafe"

// Offset is the constraint for relative-pointer offset fields: a signed
// integer whose width decides the addressable range.
type Offset interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// RelPtr is a view of a relative pointer stored inside a caller-owned
// arena: a byte region that can be dumped to disk or relocated wholesale
// without a pointer-fixup pass. The pointer's field lives at pos; its
// encoded offset is relative to that position (the field's own address,
// not the containing record's), optionally scaled by a stride.
//
// With a stride above 1, a narrow offset width addresses a wider byte
// range, at the cost of requiring every target to sit at a multiple of the
// stride.
//
// The encoded offset is only valid at the exact position it was computed
// for. Copying the field bytes elsewhere in the arena, or splicing arenas
// together, silently corrupts the pointer unless it is reassigned; that is
// a property of the encoding, not a defect of this type.
type RelPtr[O Offset] struct {
	buf    []byte
	pos    int
	stride int
}

// Aliases for the common widths, mirroring the count/offset pairings of
// RelArray8..64.
type (
	RelPtr8  = RelPtr[int8]
	RelPtr16 = RelPtr[int16]
	RelPtr32 = RelPtr[int32]
	RelPtr64 = RelPtr[int64]
)

// NewRelPtr returns a view of the relative pointer field stored at pos in
// buf, with a stride of one byte.
func NewRelPtr[O Offset](buf []byte, pos int) RelPtr[O] {
	return NewRelPtrStride[O](buf, pos, 1)
}

// NewRelPtrStride is NewRelPtr with an explicit stride. The stride must be
// positive; every assigned target must sit at a byte distance that is a
// multiple of it.
func NewRelPtrStride[O Offset](buf []byte, pos int, stride int) RelPtr[O] {
	w := offsetWidth[O]()
	assertf(stride > 0, "relative pointer stride must be positive, got %d", stride)
	assertf(pos >= 0 && pos+w <= len(buf),
		"relative pointer field [%d,%d) outside arena of %d bytes", pos, pos+w, len(buf))
	return RelPtr[O]{buf: buf, pos: pos, stride: stride}
}

// Pos returns the arena position of the offset field itself.
func (p RelPtr[O]) Pos() int { return p.pos }

// Stride returns the scale factor applied to the stored offset.
func (p RelPtr[O]) Stride() int { return p.stride }

// Assign encodes target (an arena position) as an offset relative to the
// field's own position. A target whose byte distance is not a multiple of
// the stride, or whose scaled offset does not fit the offset width, is a
// programmer error and panics: the width or stride chosen for this layout
// is too small and must be fixed at the type level, never truncated at
// run time.
func (p RelPtr[O]) Assign(target int) {
	min, max := offsetRange[O]()
	assertf(target >= 0 && target <= len(p.buf),
		"relative pointer target %d outside arena of %d bytes", target, len(p.buf))
	diff := target - p.pos
	assertf(diff%p.stride == 0,
		"relative pointer target %d is %d bytes from its field, not a multiple of stride %d; decrease the stride",
		target, diff, p.stride)
	q := int64(diff / p.stride)
	assertf(q > min && q <= max,
		"relative pointer offset %d outside [%d,%d]; widen the offset type", q, min+1, max)
	p.store(q)
}

// AssignNil encodes the null sentinel: the minimum representable offset,
// a value Assign can never produce.
func (p RelPtr[O]) AssignNil() {
	min, _ := offsetRange[O]()
	p.store(min)
}

// IsNil reports whether the field currently encodes the null sentinel.
func (p RelPtr[O]) IsNil() bool {
	min, _ := offsetRange[O]()
	return p.load() == min
}

// Get resolves the pointer to an arena position. It reports false for a
// null pointer. Get trusts the stored offset: soundness rests on the
// arena not having been relocated piecemeal since Assign.
func (p RelPtr[O]) Get() (int, bool) {
	min, _ := offsetRange[O]()
	off := p.load()
	if off == min {
		return 0, false
	}
	return p.pos + int(off)*p.stride, true
}

// RawOffset returns the stored offset value, sentinel included. Useful
// for dumping and debugging layouts.
func (p RelPtr[O]) RawOffset() int64 { return p.load() }

// Equal compares two pointers by their resolved positions, never by
// dereferencing. Two null pointers are equal regardless of where their
// fields live.
func (p RelPtr[O]) Equal(q RelPtr[O]) bool {
	a, aok := p.Get()
	b, bok := q.Get()
	if aok != bok {
		return false
	}
	return !aok || a == b
}

// The offset field is stored little-endian two's complement, so an arena
// has one well-defined on-disk form on every host.

func (p RelPtr[O]) store(v int64) {
	w := offsetWidth[O]()
	u := uint64(v)
	for i := 0; i < w; i++ {
		p.buf[p.pos+i] = byte(u >> (8 * i))
	}
}

func (p RelPtr[O]) load() int64 {
	w := offsetWidth[O]()
	var u uint64
	for i := 0; i < w; i++ {
		u |= uint64(p.buf[p.pos+i]) << (8 * i)
	}
	shift := 64 - 8*w
	return int64(u<<shift) >> shift
}

// offsetWidth derives the byte width of the offset type; unsafe.Sizeof on
// a zero value is a compile-time constant, no pointer arithmetic involved.
func offsetWidth[O Offset]() int {
	var o O
	return int(unsafe.Sizeof(o))
}

func offsetRange[O Offset]() (min, max int64) {
	w := offsetWidth[O]()
	max = 1<<(8*w-1) - 1
	min = -max - 1
	return min, max
}
