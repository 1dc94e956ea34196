// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "github.com/bpowers/packedvec/internal/bitcodec"

// ConcurrentVector is a bit-packed dynamic array safe for concurrent
// element writes: goroutines writing different elements never
// corrupt each other, even when those elements share a word, because
// every write goes through an atomic compare-and-swap retry loop.
// Goroutines writing the *same* element linearize, but which one's
// value survives is unspecified. It corresponds to
// compact_vector.hpp's compact::ts_vector.
//
// Capacity-changing operations (PushBack that grows, Resize, Erase,
// Emplace, Assign) still require the caller to hold exclusive access;
// only same-capacity element reads and writes are safe to run
// concurrently with each other.
type ConcurrentVector[IDX Integer, W Word] struct {
	*container[IDX, W]
}

// NewConcurrentVector creates a ConcurrentVector holding n elements of
// bits width each.
func NewConcurrentVector[IDX Integer, W Word](bits uint, n int, opts ...Option[W]) (*ConcurrentVector[IDX, W], error) {
	c, err := newContainer[IDX, W](bits, n, bitcodec.WordBits[W](), policyAtomic, opts...)
	if err != nil {
		return nil, err
	}
	return &ConcurrentVector[IDX, W]{c}, nil
}

// NewEmptyConcurrentVector creates a zero-length ConcurrentVector with
// the given element width.
func NewEmptyConcurrentVector[IDX Integer, W Word](bits uint, opts ...Option[W]) (*ConcurrentVector[IDX, W], error) {
	return NewConcurrentVector[IDX, W](bits, 0, opts...)
}
