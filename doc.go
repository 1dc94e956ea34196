// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package packedvec is a bit-packed, random-access dynamic array: a
// drop-in replacement for a slice of small integers where every
// element occupies exactly b bits instead of a whole machine word.
//
// Three façades share one storage engine and iterator:
//
//   - Vector is single-threaded; element writes are not atomic.
//   - ConcurrentVector lets goroutines write disjoint elements of the
//     same underlying word safely, via an atomic read-modify-write.
//   - CASVector additionally exposes an element-level compare-and-swap,
//     at the cost of reserving the top bit of every word for an
//     advisory lock used only when an element straddles two words.
//
// In-memory only: this package is not a serialization format, not a
// general bit-vector/SIMD library, and provides no locking beyond
// hardware atomics on individual words.
package packedvec
