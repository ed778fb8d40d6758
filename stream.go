// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

// SeekOrigin selects the reference point for Stream.Seek. Not every
// backend supports seeking; check the returned error.
type SeekOrigin uint8

const (
	SeekBegin SeekOrigin = iota
	SeekCurrent
	SeekEnd
)

func (o SeekOrigin) String() string {
	switch o {
	case SeekBegin:
		return "Begin"
	case SeekCurrent:
		return "Current"
	case SeekEnd:
		return "End"
	default:
		return "SeekOrigin(unknown)"
	}
}

// StreamFuncs declares the capability slots of a stream backend.
//
// A nil slot means the backend does not support that operation; invoking it
// through the Stream reports ErrInvalidOperation. This mirrors the option
// structs elsewhere in this package: absence is an explicit nil field, with
// behavior documented at the call site, not a hidden default.
//
// Contract expectations:
//   - Read either fully satisfies len(p) or returns an error describing why
//     it could not; partial transfers with a nil error are reserved for the
//     buffered path (see BufferedRead).
//   - Write reports ErrAllocationFailure distinctly from generic failure
//     when a backing store could not grow.
//   - Seek resolves the three origins to an absolute position, returns it,
//     and must not move the cursor when reporting ErrSeekFailed.
type StreamFuncs struct {
	Size  func() (int64, error)
	Read  func(p []byte) (int, error)
	Write func(p []byte) (int, error)
	Seek  func(offset int64, origin SeekOrigin) (int64, error)
	Close func() error
}

// Stream is a handle over one backend. It owns the sticky error state and,
// for chunk-producing backends, the buffered window.
//
// A Stream is not safe for concurrent use: the sticky error and the window
// cursor are mutated in place with no internal synchronization. Backing
// resources are exclusively owned by the handle until Close.
type Stream struct {
	funcs  StreamFuncs
	window *Window
	err    error
}

// NewStream returns a stream handle dispatching to the given capability
// slots, with no buffered window.
func NewStream(funcs StreamFuncs) *Stream {
	return &Stream{funcs: funcs}
}

// NewBufferedStream returns a stream handle whose reads go through a
// buffered window replenished by refill. The window starts empty, so the
// first read triggers a refill.
func NewBufferedStream(funcs StreamFuncs, refill RefillFunc) *Stream {
	s := &Stream{funcs: funcs}
	s.window = &Window{refill: refill}
	return s
}

// Window returns the stream's buffered window, or nil if the backend does
// not expose one.
func (s *Stream) Window() *Window { return s.window }

// Err returns the sticky error state: the first failure recorded on this
// handle, or nil. Later failures never overwrite it.
func (s *Stream) Err() error { return s.err }

// ResetError returns the current sticky error and clears it to success, so
// callers can checkpoint error state across a batch of operations.
func (s *Stream) ResetError() error {
	err := s.err
	s.err = nil
	return err
}

// fail merges err into the sticky state, first error wins, and returns err
// unchanged so callers always see the immediate result.
func (s *Stream) fail(err error) error {
	if err != nil && s.err == nil {
		s.err = err
	}
	return err
}

// Size returns the total byte length of the stream, if the backend
// supports it.
func (s *Stream) Size() (int64, error) {
	if s.funcs.Size == nil {
		return 0, s.fail(ErrInvalidOperation)
	}
	n, err := s.funcs.Size()
	return n, s.fail(err)
}

// Read fills dst from the stream. It returns the number of bytes actually
// read; a short count is always accompanied by a non-nil error.
//
// A zero-length dst short-circuits to (0, nil) without touching the
// backend or the sticky state. Streams without a direct read slot but with
// a buffered window read through BufferedRead.
func (s *Stream) Read(dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.funcs.Read != nil {
		n, err := s.funcs.Read(dst)
		return n, s.fail(err)
	}
	if s.window != nil {
		return s.BufferedRead(dst)
	}
	return 0, s.fail(ErrInvalidOperation)
}

// Write sends src to the stream. It returns the number of bytes actually
// written; a short count is always accompanied by a non-nil error.
// Growable backends report ErrAllocationFailure distinctly from I/O
// failure. A zero-length src short-circuits to (0, nil).
func (s *Stream) Write(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if s.funcs.Write == nil {
		return 0, s.fail(ErrInvalidOperation)
	}
	n, err := s.funcs.Write(src)
	return n, s.fail(err)
}

// Seek moves the cursor to offset relative to origin and returns the
// resulting absolute position. Destinations outside the backend's valid
// range report ErrSeekFailed and leave the cursor unchanged.
func (s *Stream) Seek(offset int64, origin SeekOrigin) (int64, error) {
	assertf(origin <= SeekEnd, "invalid seek origin %d", uint8(origin))
	if s.funcs.Seek == nil {
		return 0, s.fail(ErrInvalidOperation)
	}
	pos, err := s.funcs.Seek(offset, origin)
	return pos, s.fail(err)
}

// Close flushes and releases the backend's resources. A stream without a
// close slot closes trivially.
func (s *Stream) Close() error {
	if s.funcs.Close == nil {
		return nil
	}
	return s.fail(s.funcs.Close())
}

// SupportsSize reports whether the backend populated the Size slot.
func (s *Stream) SupportsSize() bool { return s.funcs.Size != nil }

// SupportsRead reports whether the stream can read, directly or through a
// buffered window.
func (s *Stream) SupportsRead() bool { return s.funcs.Read != nil || s.window != nil }

// SupportsWrite reports whether the backend populated the Write slot.
func (s *Stream) SupportsWrite() bool { return s.funcs.Write != nil }

// SupportsSeek reports whether the backend populated the Seek slot.
func (s *Stream) SupportsSeek() bool { return s.funcs.Seek != nil }

// SupportsClose reports whether the backend populated the Close slot.
// Close itself treats an absent slot as trivial success.
func (s *Stream) SupportsClose() bool { return s.funcs.Close != nil }

// SupportsBufferedRead reports whether the stream exposes a buffered
// window.
func (s *Stream) SupportsBufferedRead() bool { return s.window != nil }
