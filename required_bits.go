// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "math/bits"

// RequiredBits returns the minimum element width needed to hold values
// in [0, s) for unsigned elements, or [-s, s) for signed elements,
// rounding up when s is not a power of two. It is the runtime
// equivalent of compact_vector.hpp's required_bits, which uses
// __builtin_clz; we use math/bits.Len64 instead.
func RequiredBits(s uint64, signed bool) uint {
	if s == 0 {
		return 0
	}
	b := uint(bits.Len64(s - 1))
	if signed {
		b++
	}
	return b
}
