// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

import (
	"fmt"
	"os"
)

// WriteFunc is the callback behind a WriterView. A nil p marks end of
// stream: flush whatever the sink buffers and finalize.
type WriteFunc func(p []byte) error

// WriterView is a non-owning, callback-based byte sink with a sticky last
// result: after the first failure every Write is a no-op returning that
// same error, so a long emit sequence needs only one check at the end.
type WriterView struct {
	fn   WriteFunc
	last error
}

// NewWriterView returns a view over the given callback.
func NewWriterView(fn WriteFunc) *WriterView {
	assertf(fn != nil, "nil writer view callback")
	return &WriterView{fn: fn}
}

// Write forwards p to the callback unless a previous write already failed.
// Zero-length writes bypass the callback entirely. It returns the sticky
// result.
func (v *WriterView) Write(p []byte) error {
	if len(p) != 0 && v.last == nil {
		v.last = v.fn(p)
	}
	return v.last
}

// End signals end-of-stream to the callback (flush), returns the
// accumulated result, and resets the view to success for reuse.
func (v *WriterView) End() error {
	if v.last == nil {
		v.last = v.fn(nil)
	}
	err := v.last
	v.last = nil
	return err
}

// WriterViewFromFile returns a view writing to f; End syncs the file.
func WriterViewFromFile(f *os.File) *WriterView {
	assertf(f != nil, "nil file handle")
	return NewWriterView(func(p []byte) error {
		if p == nil {
			if err := f.Sync(); err != nil {
				return fmt.Errorf("%w: %v", ErrUnknown, err)
			}
			return nil
		}
		if _, err := f.Write(p); err != nil {
			return fmt.Errorf("%w: %v", ErrUnknown, err)
		}
		return nil
	})
}

// WriterViewFromSlice returns a view appending to *dst; End is a no-op.
func WriterViewFromSlice(dst *[]byte) *WriterView {
	assertf(dst != nil, "nil destination slice")
	return NewWriterView(func(p []byte) error {
		*dst = append(*dst, p...)
		return nil
	})
}

// FixedBuffer is a bounded sink for WriterViewFromFixed: writes land at
// Data[Written:] until capacity runs out.
type FixedBuffer struct {
	Data    []byte
	Written int
}

// WriterViewFromFixed returns a view writing into buf. A write that would
// overflow the remaining capacity reports ErrEndOfStream and leaves the
// buffer unmodified.
func WriterViewFromFixed(buf *FixedBuffer) *WriterView {
	assertf(buf != nil, "nil fixed buffer")
	return NewWriterView(func(p []byte) error {
		if p == nil {
			return nil
		}
		if buf.Written+len(p) > len(buf.Data) {
			return ErrEndOfStream
		}
		copy(buf.Data[buf.Written:], p)
		buf.Written += len(p)
		return nil
	})
}
