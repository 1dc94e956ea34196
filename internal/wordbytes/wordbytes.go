// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package wordbytes reinterprets a word slice as a byte slice without
// copying, the same narrowly-scoped unsafe technique bpowers/bit's
// internal/unsafestring uses for zero-copy string<->[]byte
// conversion, here modernized with unsafe.Slice and retargeted at the
// NUMA first-touch helper, which only needs to write one byte per
// page and doesn't care about word boundaries.
package wordbytes

import "unsafe"

// Word mirrors the word-type constraint used throughout the codec.
type Word interface {
	uint32 | uint64
}

// Bytes returns a byte slice covering the same backing array as s.
//
// SAFETY: the returned slice aliases s. It must not be retained past
// s's lifetime, and writes through it bypass any word-level atomics
// the caller relies on elsewhere -- it exists only for the first-touch
// helper, which writes disjoint bytes that are never read back.
func Bytes[W Word](s []W) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero W
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sz)
}
