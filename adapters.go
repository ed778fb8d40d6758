// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

import (
	"fmt"
	"io"
)

// Adapters between Stream and the standard io interfaces, so streams can
// feed stdlib consumers (io.ReadAll, bufio, third-party codecs) and the
// other way around. The semantic gap they bridge:
//   - Stream reads report ErrEndOfStream; io readers report io.EOF.
//   - Stream seeks take a SeekOrigin; io seekers take a whence int.
// The sticky error state of the underlying stream still accumulates
// through adapted calls.

// IOReader adapts s to io.Reader. ErrEndOfStream (wrapped or not) maps to
// io.EOF; a partial final read is returned together with io.EOF, which
// stdlib consumers handle.
func IOReader(s *Stream) io.Reader { return streamReader{s} }

// IOWriter adapts s to io.Writer. Short writes keep their stream error,
// satisfying the io.Writer contract that n < len(p) implies err != nil.
func IOWriter(s *Stream) io.Writer { return streamWriter{s} }

// IOSeeker adapts s to io.Seeker. An out-of-range whence reports
// ErrInvalidOperation rather than panicking, since whence arrives as data
// through the io surface, not as a compile-checked enum.
func IOSeeker(s *Stream) io.Seeker { return streamSeeker{s} }

type streamReader struct{ s *Stream }

func (r streamReader) Read(p []byte) (int, error) {
	n, err := r.s.Read(p)
	if IsEndOfStream(err) {
		return n, io.EOF
	}
	return n, err
}

type streamWriter struct{ s *Stream }

func (w streamWriter) Write(p []byte) (int, error) {
	return w.s.Write(p)
}

type streamSeeker struct{ s *Stream }

func (sk streamSeeker) Seek(offset int64, whence int) (int64, error) {
	var origin SeekOrigin
	switch whence {
	case io.SeekStart:
		origin = SeekBegin
	case io.SeekCurrent:
		origin = SeekCurrent
	case io.SeekEnd:
		origin = SeekEnd
	default:
		return 0, fmt.Errorf("%w: whence %d", ErrInvalidOperation, whence)
	}
	return sk.s.Seek(offset, origin)
}
