// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

// Allocator obtains and releases the contiguous word buffers backing
// a container. Growth never reallocates in place: it allocates a new,
// larger buffer, copies the live words into it, and releases the old
// one, mirroring the C++ allocate/copy/deallocate growth model.
type Allocator[W Word] interface {
	// Allocate returns a buffer of exactly nWords words, or an error.
	Allocate(nWords int) ([]W, error)
	// Free releases a buffer previously returned by Allocate. It is
	// called with the old buffer immediately after its contents have
	// been copied into a newly-allocated one.
	Free(mem []W)
}

// defaultAllocator backs containers that don't supply their own
// Allocator. Go's make already zero-initializes the buffer, so unlike
// the original's uninitialized operator new[], "whatever the
// allocator provided" for an unwritten position is always zero here;
// Free is a no-op because the garbage collector reclaims the backing
// array once nothing references it.
type defaultAllocator[W Word] struct{}

func (defaultAllocator[W]) Allocate(nWords int) ([]W, error) {
	return make([]W, nWords), nil
}

func (defaultAllocator[W]) Free(mem []W) {}
