// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "github.com/bpowers/packedvec/internal/bitcodec"

// Vector48 is a fixed-width façade over Vector with the element width
// pinned to 48 bits, the way the original's 48-bit index type
// specializes the generic vector for large in-memory indices and
// suffix arrays that always need exactly 48 bits: the constructor
// takes no width argument. The width is still checked against the
// word type at construction, so a 32-bit word type is rejected.
// Supplements spec.md's distillation, which dropped the 48-bit
// specialization present in unittests/test_48bit_index.cc.
type Vector48[W Word] struct {
	*container[uint64, W]
}

// StaticBits is the element width every Vector48 uses.
const StaticBits = 48

// NewVector48 creates a Vector48 holding n elements, each 48 bits
// wide.
func NewVector48[W Word](n int, opts ...Option[W]) (*Vector48[W], error) {
	c, err := newContainer[uint64, W](StaticBits, n, bitcodec.WordBits[W](), policyPlain, opts...)
	if err != nil {
		return nil, err
	}
	return &Vector48[W]{c}, nil
}

// StaticBits returns the fixed element width (always 48).
func (v *Vector48[W]) StaticBits() uint { return StaticBits }
