// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio_test

import (
	"errors"
	"fmt"
	"testing"

	binaryio "github.com/BluFedora/BinaryIO"
)

func TestKindOfAndSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantKind binaryio.Kind
		wantText string
	}{
		{"nil", nil, binaryio.KindSuccess, "Success"},
		{"eos", binaryio.ErrEndOfStream, binaryio.KindEndOfStream, "EndOfStream"},
		{"alloc", binaryio.ErrAllocationFailure, binaryio.KindAllocationFailure, "AllocationFailure"},
		{"read", binaryio.ErrReadFailed, binaryio.KindReadError, "ReadError"},
		{"seek", binaryio.ErrSeekFailed, binaryio.KindSeekError, "SeekError"},
		{"data", binaryio.ErrInvalidData, binaryio.KindInvalidData, "InvalidData"},
		{"op", binaryio.ErrInvalidOperation, binaryio.KindInvalidOperation, "InvalidOperation"},
		{"unknown", binaryio.ErrUnknown, binaryio.KindUnknownError, "UnknownError"},
		{"foreign", errors.New("boom"), binaryio.KindUnknownError, "UnknownError"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := binaryio.KindOf(tc.err)
			if k != tc.wantKind {
				t.Fatalf("KindOf=%v want %v", k, tc.wantKind)
			}
			if k.String() != tc.wantText {
				t.Fatalf("String=%q want %q", k.String(), tc.wantText)
			}
		})
	}
}

func TestKindErrRoundTrip(t *testing.T) {
	for k := binaryio.KindSuccess; k <= binaryio.KindUnknownError; k++ {
		if got := binaryio.KindOf(k.Err()); got != k {
			t.Fatalf("KindOf(%v.Err())=%v", k, got)
		}
	}
	if binaryio.KindSuccess.Err() != nil {
		t.Fatalf("KindSuccess.Err() should be nil")
	}
}

func TestWrappedSentinelsClassify(t *testing.T) {
	wrapped := fmt.Errorf("refill: %w", binaryio.ErrReadFailed)
	if binaryio.KindOf(wrapped) != binaryio.KindReadError {
		t.Fatalf("wrapped read error not classified")
	}
	double := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", binaryio.ErrEndOfStream))
	if !binaryio.IsEndOfStream(double) {
		t.Fatalf("double-wrapped end of stream not detected")
	}
	if binaryio.IsInvalidOperation(double) {
		t.Fatalf("end of stream misdetected as invalid operation")
	}
}

func TestKindStringUnknownBranch(t *testing.T) {
	if binaryio.Kind(250).String() != "UnknownError" {
		t.Fatalf("out-of-range kind should print as UnknownError")
	}
	if binaryio.KindOf(binaryio.Kind(250).Err()) != binaryio.KindUnknownError {
		t.Fatalf("out-of-range kind should map to ErrUnknown")
	}
}
