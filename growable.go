// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

// GrowableBuffer is an auto-resizing byte store for the growable stream
// backend. The zero value is an empty buffer with no growth limit.
type GrowableBuffer struct {
	data  []byte
	limit int
}

// NewGrowableBuffer returns a buffer seeded with initial. The buffer takes
// ownership of the slice.
func NewGrowableBuffer(initial []byte) *GrowableBuffer {
	return &GrowableBuffer{data: initial}
}

// Bytes returns the current contents. The slice is valid until the next
// write or seek through a stream over this buffer.
func (b *GrowableBuffer) Bytes() []byte { return b.data }

// Len returns the current size in bytes.
func (b *GrowableBuffer) Len() int { return len(b.data) }

// SetLimit caps the size the buffer may grow to; growth past the cap
// reports ErrAllocationFailure. A limit of 0 means unlimited.
func (b *GrowableBuffer) SetLimit(n int) { b.limit = n }

// grow extends the store to n bytes, zero-filling the new region. On
// failure the store is left unmodified.
func (b *GrowableBuffer) grow(n int) error {
	if n <= len(b.data) {
		return nil
	}
	if b.limit > 0 && n > b.limit {
		return ErrAllocationFailure
	}
	if n <= cap(b.data) {
		old := len(b.data)
		b.data = b.data[:n]
		clear(b.data[old:])
		return nil
	}
	nd := make([]byte, n)
	copy(nd, b.data)
	b.data = nd
	return nil
}

type growableStream struct {
	buf *GrowableBuffer
	pos int
}

// FromGrowableBuffer returns a read/write/seek stream over buf. Writes
// past the current size extend the store; seeking past the end also grows
// it (sparse-file analogue), so seek-then-write at an arbitrary offset is
// valid. Failed growth reports ErrAllocationFailure and leaves both the
// store and the cursor unmodified.
func FromGrowableBuffer(buf *GrowableBuffer) *Stream {
	assertf(buf != nil, "nil growable buffer")
	g := &growableStream{buf: buf}
	return NewStream(StreamFuncs{
		Size:  g.size,
		Read:  g.read,
		Write: g.write,
		Seek:  g.seek,
	})
}

func (g *growableStream) size() (int64, error) { return int64(len(g.buf.data)), nil }

func (g *growableStream) read(dst []byte) (int, error) {
	n := copy(dst, g.buf.data[g.pos:])
	g.pos += n
	if n < len(dst) {
		return n, ErrEndOfStream
	}
	return n, nil
}

func (g *growableStream) write(src []byte) (int, error) {
	need := g.pos + len(src)
	if need < g.pos {
		return 0, ErrAllocationFailure
	}
	if err := g.buf.grow(need); err != nil {
		return 0, err
	}
	n := copy(g.buf.data[g.pos:], src)
	g.pos += n
	return n, nil
}

func (g *growableStream) seek(offset int64, origin SeekOrigin) (int64, error) {
	var dest int64
	switch origin {
	case SeekBegin:
		dest = offset
	case SeekCurrent:
		dest = int64(g.pos) + offset
	case SeekEnd:
		dest = int64(len(g.buf.data)) + offset
	}
	if dest < 0 || dest != int64(int(dest)) {
		return 0, ErrSeekFailed
	}
	if err := g.buf.grow(int(dest)); err != nil {
		return 0, err
	}
	g.pos = int(dest)
	return dest, nil
}
