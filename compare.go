// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import "github.com/bpowers/packedvec/internal/bitcodec"

// Compare lexicographically compares the element sequences [first1,
// first1+len1) and [first2, first2+len2), reading a whole used-bits
// chunk at a time rather than one element at a time, the same way
// lexicographical_compare_n does. Both iterators must share the same
// element width and used-bits-per-word.
//
// The original's word comparison permutes each word by swapping
// adjacent bit pairs, which is only a correct stand-in for
// element-order comparison when bits == 1; compact_iterator.hpp itself
// notes this without fixing it. This implementation instead reverses
// the order of the word_step[b] whole b-bit chunks packed into each
// word before comparing them as numbers, which is correct for every
// element width.
func Compare[IDX Integer, W Word](first1 Iterator[IDX, W], len1 int, first2 Iterator[IDX, W], len2 int) bool {
	bitsPerElem := first1.bits
	used := first1.used
	step := bitcodec.WordStep(bitsPerElem, used)
	stepBits := bitcodec.StepBits(bitsPerElem, used)

	minLen := len1
	if len2 < minLen {
		minLen = len2
	}
	left := uint(minLen) * bitsPerElem

	it1, it2 := first1, first2
	for left > stepBits {
		w1 := it1.GetBits(stepBits)
		w2 := it2.GetBits(stepBits)
		if w1 != w2 {
			return compareChunks(w1, w2, bitsPerElem, step)
		}
		left -= stepBits
		it1 = it1.Advance(int(step))
		it2 = it2.Advance(int(step))
	}
	if left > 0 {
		count := left / bitsPerElem
		w1 := it1.GetBits(left)
		w2 := it2.GetBits(left)
		if w1 != w2 {
			return compareChunks(w1, w2, bitsPerElem, count)
		}
	}

	return len1 < len2
}

// compareChunks reverses the order of count b-bit chunks packed into
// the low count*b bits of w1 and w2 -- so that the chunk holding the
// lowest-indexed (and therefore most-significant, lexicographically)
// element ends up most-significant numerically too -- then compares
// the results as plain integers.
func compareChunks[W Word](w1, w2 W, bits, count uint) bool {
	return reverseChunks(w1, bits, count) < reverseChunks(w2, bits, count)
}

func reverseChunks[W Word](w W, bits, count uint) W {
	chunkMask := (^W(0)) >> (bitcodec.WordBits[W]() - bits)
	var out W
	for i := uint(0); i < count; i++ {
		chunk := (w >> (i * bits)) & chunkMask
		out |= chunk << ((count - 1 - i) * bits)
	}
	return out
}
