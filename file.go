// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

import (
	"fmt"
	"io"
	"os"
)

// DefaultFileWindowSize is the local window size used by FromFile.
const DefaultFileWindowSize = 4096

type fileStream struct {
	f   *os.File
	buf []byte // rotating local buffer; capacity fixed at construction
}

// FromFile returns a buffered stream over the open file f with the default
// window size. The stream takes ownership of f until Close.
func FromFile(f *os.File) *Stream {
	return FromFileWindow(f, DefaultFileWindowSize)
}

// FromFileWindow is FromFile with an explicit local window size. Reads of
// any length are correct regardless of the window size chosen; the size
// only tunes how often the window refills from the OS.
func FromFileWindow(f *os.File, windowSize int) *Stream {
	assertf(f != nil, "nil file handle")
	assertf(windowSize > 0, "file window size must be positive, got %d", windowSize)

	fs := &fileStream{f: f, buf: make([]byte, 0, windowSize)}
	s := NewBufferedStream(StreamFuncs{
		Size:  fs.size,
		Write: fs.write,
		Close: fs.close,
	}, fs.refill)
	s.funcs.Seek = func(offset int64, origin SeekOrigin) (int64, error) {
		return fs.seek(s, offset, origin)
	}
	return s
}

func (fs *fileStream) size() (int64, error) {
	info, err := fs.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnknown, err)
	}
	return info.Size(), nil
}

// refill loads the next chunk from the file into the local buffer. It is
// only invoked on an exhausted window, so there are never unread bytes to
// preserve. End-of-file poisons the window with ErrEndOfStream; an OS read
// error poisons it with ErrReadFailed wrapping the underlying error.
func (fs *fileStream) refill(s *Stream) error {
	n, err := fs.f.Read(fs.buf[:cap(fs.buf)])
	if n > 0 {
		s.Window().Reset(fs.buf[:n])
		return nil
	}
	switch {
	case err == io.EOF:
		return s.PoisonWindow(ErrEndOfStream)
	case err != nil:
		return s.PoisonWindow(fmt.Errorf("%w: %v", ErrReadFailed, err))
	default:
		return s.PoisonWindow(ErrUnknown)
	}
}

// seek translates the origin to the OS whence value and repositions the
// file. SeekCurrent is taken relative to the logical read position, which
// trails the OS position by however many window bytes are still unread.
// Success drops the whole local window (the next read refills from the new
// position) and re-arms a poisoned window; a prior sticky error survives
// until ResetError.
func (fs *fileStream) seek(s *Stream, offset int64, origin SeekOrigin) (int64, error) {
	var whence int
	switch origin {
	case SeekBegin:
		whence = io.SeekStart
	case SeekCurrent:
		whence = io.SeekCurrent
		offset -= int64(s.Window().Available())
	case SeekEnd:
		whence = io.SeekEnd
	}

	pos, err := fs.f.Seek(offset, whence)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeekFailed, err)
	}

	w := s.Window()
	w.Reset(fs.buf[:0])
	w.refill = fs.refill
	return pos, nil
}

// write bypasses the read window and writes at the OS file position. Note
// that after buffered reads the OS position is ahead of the logical read
// position; seek first when interleaving reads and writes.
func (fs *fileStream) write(src []byte) (int, error) {
	n, err := fs.f.Write(src)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrUnknown, err)
	}
	return n, nil
}

func (fs *fileStream) close() error {
	if err := fs.f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknown, err)
	}
	return nil
}
