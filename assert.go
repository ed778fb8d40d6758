// Copyright (c) 2021-2025 BluFedora. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binaryio

import "fmt"

// assertf is the fail-fast path for programmer errors: conditions that
// indicate a logic bug in the caller's type or layout choices (misaligned
// relative-pointer target, out-of-range offset, invalid seek origin, a
// refill that violates its post-condition). Recoverable I/O failures never
// come through here; they flow through the error sentinels instead.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("binaryio: "+format, args...))
	}
}
