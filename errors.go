// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

import "errors"

// The error surface is a closed set of sentinels, one per failure kind.
// Operations return them (possibly wrapped with context via %w) and merge
// them into the stream's sticky state; classify with KindOf or errors.Is.
//
// Mental model:
//   - ErrEndOfStream / ErrAllocationFailure / ErrReadFailed / ErrSeekFailed
//     are environmental: report them, recover, or stop issuing calls.
//   - ErrInvalidData is reserved for callers parsing through a stream; the
//     library itself never produces it.
//   - ErrInvalidOperation marks a capability the backend did not populate.
//   - Programmer errors (bad seek origin, misaligned relative pointer) are
//     not part of this set; they panic.

// ErrEndOfStream means the stream has no more data to produce, or a fixed
// region has no more room to accept bytes.
var ErrEndOfStream = errors.New("binaryio: end of stream")

// ErrAllocationFailure means a growable backend could not extend its
// backing store. The store is left unmodified.
var ErrAllocationFailure = errors.New("binaryio: allocation failure")

// ErrReadFailed means the backend failed to produce more data for a reason
// other than exhaustion (typically an OS read error, carried via %w).
var ErrReadFailed = errors.New("binaryio: read failed")

// ErrSeekFailed means the requested position is outside the backend's
// valid range. The cursor is left where it was.
var ErrSeekFailed = errors.New("binaryio: seek failed")

// ErrInvalidData means bytes were transferred but could not be interpreted.
// Reserved for callers; see the mental model above.
var ErrInvalidData = errors.New("binaryio: invalid data")

// ErrInvalidOperation means the stream does not support the invoked
// capability (the slot was not populated by the backend factory).
var ErrInvalidOperation = errors.New("binaryio: invalid operation")

// ErrUnknown covers failures the backend could not attribute to any of the
// kinds above.
var ErrUnknown = errors.New("binaryio: unknown error")

// Kind is the compact classification of an operation result.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindEndOfStream
	KindAllocationFailure
	KindReadError
	KindSeekError
	KindInvalidData
	KindInvalidOperation
	KindUnknownError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindEndOfStream:
		return "EndOfStream"
	case KindAllocationFailure:
		return "AllocationFailure"
	case KindReadError:
		return "ReadError"
	case KindSeekError:
		return "SeekError"
	case KindInvalidData:
		return "InvalidData"
	case KindInvalidOperation:
		return "InvalidOperation"
	default:
		return "UnknownError"
	}
}

// Err returns the sentinel error for k, or nil for KindSuccess.
func (k Kind) Err() error {
	switch k {
	case KindSuccess:
		return nil
	case KindEndOfStream:
		return ErrEndOfStream
	case KindAllocationFailure:
		return ErrAllocationFailure
	case KindReadError:
		return ErrReadFailed
	case KindSeekError:
		return ErrSeekFailed
	case KindInvalidData:
		return ErrInvalidData
	case KindInvalidOperation:
		return ErrInvalidOperation
	default:
		return ErrUnknown
	}
}

// KindOf maps err to its Kind. nil maps to KindSuccess; errors outside the
// binaryio set (including wrapped foreign errors) map to KindUnknownError.
// Wrapped sentinels are recognized via errors.Is.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindSuccess
	case errors.Is(err, ErrEndOfStream):
		return KindEndOfStream
	case errors.Is(err, ErrAllocationFailure):
		return KindAllocationFailure
	case errors.Is(err, ErrReadFailed):
		return KindReadError
	case errors.Is(err, ErrSeekFailed):
		return KindSeekError
	case errors.Is(err, ErrInvalidData):
		return KindInvalidData
	case errors.Is(err, ErrInvalidOperation):
		return KindInvalidOperation
	default:
		return KindUnknownError
	}
}

// IsEndOfStream reports whether err carries the end-of-stream condition
// (including wrapped forms).
func IsEndOfStream(err error) bool { return errors.Is(err, ErrEndOfStream) }

// IsInvalidOperation reports whether err marks an unsupported capability.
func IsInvalidOperation(err error) bool { return errors.Is(err, ErrInvalidOperation) }
