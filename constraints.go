// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "github.com/bpowers/packedvec/internal/bitcodec"

// Integer is the set of element types a container may hold. The
// original C++ template parameterizes on any integer type and a
// static_assert enforces sizeof(IDX) <= sizeof(W); Go generics have no
// cross-type-parameter constraint, so that check is made at
// construction time instead (see ErrBitsOutOfRange).
type Integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Word is the set of machine word types usable as backing storage.
type Word = bitcodec.Word

// isSigned reports whether IDX is a signed integer type, using the
// standard generic-arithmetic trick (0-1 wraps to a large positive
// value for unsigned types, and stays negative for signed ones)
// rather than reflection.
func isSigned[IDX Integer]() bool {
	return IDX(0)-1 < 0
}

// idxBits returns the bit width of IDX (32 or 64).
func idxBits[IDX Integer]() uint {
	var zero IDX
	switch any(zero).(type) {
	case int32, uint32:
		return 32
	default:
		return 64
	}
}
