// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	binaryio "github.com/BluFedora/BinaryIO"
)

func TestRelPtrAssignGet(t *testing.T) {
	arena := make([]byte, 64)

	p := binaryio.NewRelPtr[int32](arena, 8)
	p.Assign(40)
	got, ok := p.Get()
	require.True(t, ok)
	require.Equal(t, 40, got)
	require.False(t, p.IsNil())
	require.Equal(t, int64(32), p.RawOffset())

	// Backward reference: the offset goes negative.
	p.Assign(2)
	got, ok = p.Get()
	require.True(t, ok)
	require.Equal(t, 2, got)
	require.Equal(t, int64(-6), p.RawOffset())
}

func TestRelPtrNullSentinel(t *testing.T) {
	arena := make([]byte, 16)
	p := binaryio.NewRelPtr[int16](arena, 4)

	p.AssignNil()
	require.True(t, p.IsNil())
	_, ok := p.Get()
	require.False(t, ok)
	// The sentinel is the minimum representable offset.
	require.Equal(t, int64(-0x8000), p.RawOffset())
}

func TestRelPtrSelfReference(t *testing.T) {
	// Offset zero points the field at itself and is distinct from null.
	arena := make([]byte, 8)
	p := binaryio.NewRelPtr[int8](arena, 3)
	p.Assign(3)
	require.False(t, p.IsNil())
	got, ok := p.Get()
	require.True(t, ok)
	require.Equal(t, 3, got)
	require.Equal(t, int64(0), p.RawOffset())
}

func TestRelPtrSurvivesWholesaleRelocation(t *testing.T) {
	arena := make([]byte, 32)
	binaryio.NewRelPtr[int32](arena, 4).Assign(20)

	moved := make([]byte, 32)
	copy(moved, arena)
	got, ok := binaryio.NewRelPtr[int32](moved, 4).Get()
	require.True(t, ok)
	require.Equal(t, 20, got)
}

func TestRelPtrStride(t *testing.T) {
	arena := make([]byte, 64)
	p := binaryio.NewRelPtrStride[int8](arena, 4, 4)

	// With stride 4 an int8 offset reaches 4-aligned distances well past
	// the bare int8 range.
	p.Assign(60)
	got, ok := p.Get()
	require.True(t, ok)
	require.Equal(t, 60, got)
	require.Equal(t, int64(14), p.RawOffset())

	// A target off the stride grid cannot be encoded.
	mustPanic(t, func() { p.Assign(7) })
}

func TestRelPtrRangePanics(t *testing.T) {
	arena := make([]byte, 512)
	p := binaryio.NewRelPtr[int8](arena, 0)

	p.Assign(127) // at the positive edge
	mustPanic(t, func() { p.Assign(128) })

	q := binaryio.NewRelPtr[int8](arena, 200)
	q.Assign(200 - 127) // at the negative edge; -128 is reserved for null
	mustPanic(t, func() { q.Assign(200 - 128) })
}

func TestRelPtrConstructionPanics(t *testing.T) {
	arena := make([]byte, 8)
	mustPanic(t, func() { binaryio.NewRelPtr[int32](arena, 6) })  // field straddles end
	mustPanic(t, func() { binaryio.NewRelPtr[int32](arena, -1) }) // before begin
	mustPanic(t, func() { binaryio.NewRelPtrStride[int32](arena, 0, 0) })

	p := binaryio.NewRelPtr[int32](arena, 0)
	mustPanic(t, func() { p.Assign(9) }) // target outside arena
}

func TestRelPtrEqual(t *testing.T) {
	arena := make([]byte, 64)
	a := binaryio.NewRelPtr[int32](arena, 0)
	b := binaryio.NewRelPtr[int32](arena, 8)

	a.Assign(40)
	b.Assign(40)
	// Same resolved target from different field positions.
	require.True(t, a.Equal(b))

	b.Assign(44)
	require.False(t, a.Equal(b))

	a.AssignNil()
	require.False(t, a.Equal(b))
	b.AssignNil()
	require.True(t, a.Equal(b))
}

func TestRelPtrAliases(t *testing.T) {
	arena := make([]byte, 32)
	var p binaryio.RelPtr16 = binaryio.NewRelPtr[int16](arena, 2)
	p.Assign(10)
	require.Equal(t, 2, p.Pos())
	require.Equal(t, 1, p.Stride())
	got, ok := p.Get()
	require.True(t, ok)
	require.Equal(t, 10, got)
}
