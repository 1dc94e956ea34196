// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "github.com/bpowers/packedvec/internal/bitcodec"

// CASVector is a bit-packed dynamic array that additionally exposes an
// element-level compare-and-swap. It reserves the top bit of every
// word as an advisory lock (used bits = word width - 1), needed only
// when an element straddles two words; the straddle-CAS protocol is
// documented in internal/wordstore. It corresponds to
// compact_vector.hpp's compact::cas_vector.
//
// A goroutine that dies between the two halves of a straddling CAS
// leaves that element's lock bit permanently set -- best-effort
// progress, not strict lock-freedom, and it affects only elements that
// straddle a word boundary.
type CASVector[IDX Integer, W Word] struct {
	*container[IDX, W]
}

// NewCASVector creates a CASVector holding n elements of bits width
// each.
func NewCASVector[IDX Integer, W Word](bits uint, n int, opts ...Option[W]) (*CASVector[IDX, W], error) {
	used := bitcodec.WordBits[W]() - 1
	c, err := newContainer[IDX, W](bits, n, used, policyCAS, opts...)
	if err != nil {
		return nil, err
	}
	return &CASVector[IDX, W]{c}, nil
}

// NewEmptyCASVector creates a zero-length CASVector with the given
// element width.
func NewEmptyCASVector[IDX Integer, W Word](bits uint, opts ...Option[W]) (*CASVector[IDX, W], error) {
	return NewCASVector[IDX, W](bits, 0, opts...)
}

// CAS atomically replaces the element at i with newVal if its current
// value equals expected, returning whether the swap happened.
func (v *CASVector[IDX, W]) CAS(i int, newVal, expected IDX) (bool, error) {
	return v.Begin().Advance(i).Ref().CAS(newVal, expected)
}
