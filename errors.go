// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "errors"

var (
	// ErrBitsOutOfRange is returned at construction time when the
	// requested element width is zero, exceeds the container's usable
	// bits per word, or exceeds the width of the element type, or when
	// the element type is wider than the word type.
	ErrBitsOutOfRange = errors.New("packedvec: bits per element out of range")

	// ErrIndexOutOfRange is returned by At when the index is >= size.
	ErrIndexOutOfRange = errors.New("packedvec: index out of range")

	// ErrAllocation is returned when the allocator collaborator fails
	// to obtain a word buffer, either at construction or on growth.
	ErrAllocation = errors.New("packedvec: allocation failed")

	// ErrNotCASCapable is returned by CAS on a Vector or
	// ConcurrentVector, which do not reserve a lock bit for
	// compare-and-swap.
	ErrNotCASCapable = errors.New("packedvec: container is not CAS-capable")
)
