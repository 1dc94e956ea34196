// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "github.com/bpowers/packedvec/internal/bitcodec"

// Vector is a single-threaded bit-packed dynamic array: every bit of
// every word is usable (used bits = word width), and writes go
// through a plain, non-atomic read-modify-write. Concurrent writers
// touching the same word race; see ConcurrentVector or CASVector for
// safe concurrent access. It corresponds to compact_vector.hpp's
// compact::vector.
type Vector[IDX Integer, W Word] struct {
	*container[IDX, W]
}

// NewVector creates a Vector holding n elements of bits width each.
func NewVector[IDX Integer, W Word](bits uint, n int, opts ...Option[W]) (*Vector[IDX, W], error) {
	c, err := newContainer[IDX, W](bits, n, bitcodec.WordBits[W](), policyPlain, opts...)
	if err != nil {
		return nil, err
	}
	return &Vector[IDX, W]{c}, nil
}

// NewEmptyVector creates a zero-length Vector with the given element
// width, ready for PushBack.
func NewEmptyVector[IDX Integer, W Word](bits uint, opts ...Option[W]) (*Vector[IDX, W], error) {
	return NewVector[IDX, W](bits, 0, opts...)
}
