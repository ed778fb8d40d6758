// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package binaryio is a low-level substrate for reading and writing
// structured binary data: a pluggable byte-stream abstraction with explicit
// buffering and refill semantics, plus self-relative pointers and arrays
// that let binary layouts be dumped to disk or loaded back without a
// pointer-fixup pass.
//
// Streams
//   - A Stream is a handle over a concrete backend (fixed memory region,
//     growable buffer, OS file). Capabilities (Size/Read/Write/Seek/Close)
//     are per-instance slots; a missing slot reports ErrInvalidOperation
//     when invoked, it is not an error to construct such a stream.
//   - Every failure is recorded into the handle's sticky error state,
//     first failure wins. Inspect it with Err, checkpoint it with
//     ResetError. Zero-length reads and writes bypass the backend and the
//     sticky state entirely.
//   - Backends that produce data in chunks expose a buffered window with a
//     Refill callback (see BufferedRead). Once a refill fails terminally
//     the window is poisoned: all further reads return the same error
//     without touching the backend again.
//
// Byte order
//
// WriteLE/WriteBE/ReadLE/ReadBE serialize any fixed-width integral (or
// enum-backed) type through a single stream call, reassembling values with
// shift arithmetic rather than trusting the host byte order.
//
// Relative pointers
//
// RelPtr stores a byte offset relative to the position of the offset field
// itself inside a caller-owned arena, optionally scaled by a stride. The
// encoded offset is only meaningful at the exact position it was computed
// for: relocating the field without reassigning silently corrupts it.
// Misaligned or out-of-range targets are programmer errors and panic at
// encode time; they are never truncated into the recoverable error model.
package binaryio
