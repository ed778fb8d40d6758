// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

import "unsafe"

// Integer is the constraint for the byte-order codecs: any fixed-width
// integral type, including enumerations declared as named integer types.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

// The codecs place byte i of the value at position i (little-endian) or
// sizeof(T)-1-i (big-endian), assembled with shift arithmetic so the host
// byte order never matters. Each value is exactly one stream call of
// sizeof(T) bytes, never per-byte calls.

// WriteLE encodes v in little-endian order through one stream write.
func WriteLE[T Integer](s *Stream, v T) error {
	return writeFixed(s, v, leIndex)
}

// WriteBE encodes v in big-endian order through one stream write.
func WriteBE[T Integer](s *Stream, v T) error {
	return writeFixed(s, v, beIndex)
}

// ReadLE decodes a little-endian value through one stream read. On any
// error *out is left untouched; check the result before trusting it.
func ReadLE[T Integer](s *Stream, out *T) error {
	return readFixed(s, out, leIndex)
}

// ReadBE decodes a big-endian value through one stream read. On any error
// *out is left untouched.
func ReadBE[T Integer](s *Stream, out *T) error {
	return readFixed(s, out, beIndex)
}

func leIndex(i, size int) int { return i }
func beIndex(i, size int) int { return size - 1 - i }

func writeFixed[T Integer](s *Stream, v T, index func(i, size int) int) error {
	var scratch [8]byte
	size := int(unsafe.Sizeof(v))
	u := uint64(v)
	for i := 0; i < size; i++ {
		scratch[index(i, size)] = byte(u >> (8 * i))
	}
	_, err := s.Write(scratch[:size])
	return err
}

func readFixed[T Integer](s *Stream, out *T, index func(i, size int) int) error {
	var scratch [8]byte
	size := int(unsafe.Sizeof(*out))
	if _, err := s.Read(scratch[:size]); err != nil {
		return err
	}
	var u uint64
	for i := 0; i < size; i++ {
		u |= uint64(scratch[index(i, size)]) << (8 * i)
	}
	*out = T(u)
	return nil
}
