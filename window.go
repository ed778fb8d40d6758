// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

// RefillFunc replenishes an exhausted buffered window.
//
// Contract:
//   - Pre-condition: the window cursor is at the end of the window.
//   - Post-condition on success: a fresh non-empty window with the cursor
//     at its start (forward progress is guaranteed) and the sticky error
//     untouched.
//   - On terminal failure the implementation must poison the window via
//     Stream.PoisonWindow and return the terminal error; all future
//     refills then return that same error without real I/O.
type RefillFunc func(s *Stream) error

// Window is a contiguous readable view over a backend's current chunk.
// Invariant: 0 <= cursor <= len(data). User code consumes data[cursor:]
// and advances cursor; when cursor reaches len(data) the next buffered
// read invokes the refill callback.
type Window struct {
	data   []byte
	cursor int
	refill RefillFunc
}

// Available returns the number of unread bytes in the window.
func (w *Window) Available() int { return len(w.data) - w.cursor }

// Exhausted reports whether the window has no unread bytes left.
func (w *Window) Exhausted() bool { return w.cursor == len(w.data) }

// Bytes returns the unread portion of the window. The slice is only valid
// until the next buffered read or refill.
func (w *Window) Bytes() []byte { return w.data[w.cursor:] }

// Reset points the window at a fresh chunk with the cursor at its start.
// Refill implementations call this on success.
func (w *Window) Reset(data []byte) {
	w.data = data
	w.cursor = 0
}

// Skip consumes n unread bytes without copying them out.
func (w *Window) Skip(n int) {
	assertf(n >= 0 && n <= w.Available(), "window skip of %d exceeds %d available", n, w.Available())
	w.cursor += n
}

// PoisonWindow records err into the sticky state (first error wins),
// parks the window on a zero-length region, and replaces the refill
// callback with one that returns the terminal error captured here without
// touching the backend. It returns that terminal error.
//
// The terminal error is captured at poison time, so reads after a
// ResetError checkpoint keep reporting it (and re-record it) instead of
// fabricating data from a cleared sticky state.
//
// Backends call this when a refill hits an unrecoverable condition; after
// that, repeatedly reading from the broken stream costs nothing.
func (s *Stream) PoisonWindow(err error) error {
	w := s.window
	assertf(w != nil, "poisoning a stream with no buffered window")
	assertf(err != nil, "poisoning with a nil error")
	s.fail(err)
	terminal := s.err
	w.Reset(nil)
	w.refill = func(*Stream) error { return terminal }
	return terminal
}

// BufferedRead fills dst byte-for-byte from the buffered window, invoking
// the refill callback whenever the window is exhausted, at most once per
// exhaustion and never speculatively. It decouples how much the backend hands
// back per refill from how much the caller wants.
//
// It returns the number of bytes copied and the sticky error state: a
// short count means the sticky error is non-nil, and a stream that was
// already in a failed state copies nothing. A zero-length dst
// short-circuits to (0, nil).
func (s *Stream) BufferedRead(dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	w := s.window
	if w == nil {
		return 0, s.fail(ErrInvalidOperation)
	}

	total := 0
	for total < len(dst) {
		if w.Exhausted() {
			if err := w.refill(s); err != nil {
				s.fail(err)
			} else {
				assertf(!w.Exhausted(), "refill returned success without forward progress")
			}
		}
		if s.err != nil {
			break
		}

		n := copy(dst[total:], w.data[w.cursor:])
		total += n
		w.cursor += n
	}

	return total, s.err
}
