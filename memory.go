// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

// memoryStream is the fixed-region backend. The buffered window doubles as
// the region cursor, so direct reads, buffered reads, writes, and seeks all
// agree on the current position.
type memoryStream struct {
	data     []byte
	s        *Stream
	poisoned bool
}

// FromReadOnlyMemory returns a stream reading from the fixed region b.
// Reads copy min(requested, remaining) bytes and report ErrEndOfStream on
// a short transfer; the region is never written or grown.
func FromReadOnlyMemory(b []byte) *Stream {
	return newMemoryStream(b, false)
}

// FromMemory returns a read/write stream over the fixed region b. Writes
// happen in place and share the read cursor; writing past the end of the
// region transfers what fits and reports ErrEndOfStream.
func FromMemory(b []byte) *Stream {
	return newMemoryStream(b, true)
}

func newMemoryStream(data []byte, writable bool) *Stream {
	m := &memoryStream{data: data}
	funcs := StreamFuncs{Size: m.size, Seek: m.seek}
	if writable {
		funcs.Write = m.write
	}
	s := NewBufferedStream(funcs, m.refill)
	s.window.Reset(data)
	m.s = s
	return s
}

func (m *memoryStream) size() (int64, error) { return int64(len(m.data)), nil }

// refill poisons immediately: a fixed region never has more data to
// produce. It exists only to satisfy the buffered-window contract
// uniformly across backends.
func (m *memoryStream) refill(s *Stream) error {
	m.poisoned = true
	return s.PoisonWindow(ErrEndOfStream)
}

// pos returns the region cursor. A poisoned window has parked on a
// zero-length region, which means the whole region was consumed.
func (m *memoryStream) pos() int {
	if m.poisoned {
		return len(m.data)
	}
	return m.s.window.cursor
}

// setPos re-arms the window over the real region at position p. The sticky
// error, if any, survives until ResetError.
func (m *memoryStream) setPos(p int) {
	w := m.s.window
	w.data = m.data
	w.cursor = p
	w.refill = m.refill
	m.poisoned = false
}

func (m *memoryStream) seek(offset int64, origin SeekOrigin) (int64, error) {
	var dest int64
	switch origin {
	case SeekBegin:
		dest = offset
	case SeekCurrent:
		dest = int64(m.pos()) + offset
	case SeekEnd:
		dest = int64(len(m.data)) + offset
	}
	if dest < 0 || dest > int64(len(m.data)) {
		return 0, ErrSeekFailed
	}
	m.setPos(int(dest))
	return dest, nil
}

func (m *memoryStream) write(src []byte) (int, error) {
	p := m.pos()
	n := copy(m.data[p:], src)
	m.setPos(p + n)
	if n < len(src) {
		return n, ErrEndOfStream
	}
	return n, nil
}
