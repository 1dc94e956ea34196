// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import (
	"github.com/bpowers/packedvec/internal/bitcodec"
	"github.com/bpowers/packedvec/internal/wordstore"
)

// Iterator is a random-access handle into a container's virtual bit
// stream: a (word, offset) pair plus the element width and
// concurrency policy needed to interpret it, the Go analogue of
// compact_iterator's (ptr, bits, offset) state.
//
// An Iterator holds its own copy of the backing word slice, captured
// at the moment it was obtained from a container. Because growth
// replaces the container's slice wholesale rather than mutating it in
// place, an Iterator obtained before a reallocation keeps pointing at
// the old, now-detached buffer -- it is invalidated, per spec, exactly
// as if it had gone dangling.
type Iterator[IDX Integer, W Word] struct {
	mem    []W
	word   int
	offset uint
	bits   uint
	used   uint
	signed bool
	pol    policy
}

func newIterator[IDX Integer, W Word](c *container[IDX, W], elemIdx int) Iterator[IDX, W] {
	it := Iterator[IDX, W]{
		mem:    c.mem,
		bits:   c.bits,
		used:   c.used,
		signed: c.signed,
		pol:    c.pol,
	}
	it.word, it.offset = it.locate(elemIdx)
	return it
}

func (it Iterator[IDX, W]) locate(elemIdx int) (int, uint) {
	startBit := uint(elemIdx) * it.bits
	return int(startBit / it.used), startBit % it.used
}

// Begin returns an iterator to the container's first element.
func (c *container[IDX, W]) Begin() Iterator[IDX, W] { return newIterator(c, 0) }

// End returns an iterator one-past the container's last element.
func (c *container[IDX, W]) End() Iterator[IDX, W] { return newIterator(c, c.n) }

// MTBegin returns an iterator to the first element whose store policy
// is forced to atomic read-modify-write regardless of the container's
// own policy, the Go analogue of compact_vector.hpp's mt_iterator /
// mt_begin(): a one-off way to write a plain Vector's elements safely
// from multiple goroutines without constructing a whole
// ConcurrentVector.
func (c *container[IDX, W]) MTBegin() Iterator[IDX, W] {
	it := c.Begin()
	it.pol = policyAtomic
	return it
}

// MTEnd returns the atomic-store counterpart of End.
func (c *container[IDX, W]) MTEnd() Iterator[IDX, W] {
	it := c.End()
	it.pol = policyAtomic
	return it
}

// RBegin returns a reverse iterator to the container's last element.
func (c *container[IDX, W]) RBegin() ReverseIterator[IDX, W] {
	return ReverseIterator[IDX, W]{base: c.End()}
}

// REnd returns a reverse iterator one-before the container's first
// element.
func (c *container[IDX, W]) REnd() ReverseIterator[IDX, W] {
	return ReverseIterator[IDX, W]{base: c.Begin()}
}

// IsNull reports whether it is the null sentinel iterator (ptr == nil
// && offset == 0); a default-constructed Iterator satisfies this.
func (it Iterator[IDX, W]) IsNull() bool {
	return it.mem == nil && it.word == 0 && it.offset == 0
}

// Equal reports whether two iterators reference the same position.
func (it Iterator[IDX, W]) Equal(other Iterator[IDX, W]) bool {
	return it.word == other.word && it.offset == other.offset && samePtr(it.mem, other.mem)
}

func samePtr[W Word](a, b []W) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return &a[0] == &b[0]
}

// Less orders two iterators lexicographically by (word, offset),
// matching compact_iterator's operator<.
func (it Iterator[IDX, W]) Less(other Iterator[IDX, W]) bool {
	if it.word != other.word {
		return it.word < other.word
	}
	return it.offset < other.offset
}

// Next advances the iterator by one element (operator++).
func (it Iterator[IDX, W]) Next() Iterator[IDX, W] {
	it.offset += it.bits
	if it.offset >= it.used {
		it.word++
		it.offset -= it.used
	}
	return it
}

// Prev moves the iterator back by one element (operator--).
func (it Iterator[IDX, W]) Prev() Iterator[IDX, W] {
	if it.bits > it.offset {
		it.word--
		it.offset += it.used
	}
	it.offset -= it.bits
	return it
}

// Advance moves the iterator by n elements (n may be negative),
// equivalent to operator+=/operator-=.
func (it Iterator[IDX, W]) Advance(n int) Iterator[IDX, W] {
	if n < 0 {
		return it.retreat(-n)
	}
	nbits := uint(n) * it.bits
	it.word += int(nbits / it.used)
	it.offset += nbits % it.used
	if it.offset >= it.used {
		it.word++
		it.offset -= it.used
	}
	return it
}

func (it Iterator[IDX, W]) retreat(n int) Iterator[IDX, W] {
	nbits := uint(n) * it.bits
	it.word -= int(nbits / it.used)
	ooffset := nbits % it.used
	if ooffset > it.offset {
		it.word--
		it.offset += it.used
	}
	it.offset -= ooffset
	return it
}

// Sub returns the number of elements between other and it (it - other),
// equivalent to operator-.
func (it Iterator[IDX, W]) Sub(other Iterator[IDX, W]) int {
	wdiff := (it.word - other.word) * int(it.used)
	if it.offset < other.offset {
		wdiff += int(it.used+it.offset) - int(other.offset) - int(it.used)
	} else {
		wdiff += int(it.offset) - int(other.offset)
	}
	return wdiff / int(it.bits)
}

// At returns the element n positions away without moving the
// iterator, equivalent to operator[].
func (it Iterator[IDX, W]) At(n int) IDX {
	return it.Advance(n).Get()
}

// Get performs the const-dereference read path: extract and (if
// signed) sign-extend the element at the iterator's position.
func (it Iterator[IDX, W]) Get() IDX {
	r := bitcodec.Extract(it.mem, it.word, it.offset, it.bits, it.used)
	if it.signed {
		r = bitcodec.SignExtend(r, it.bits)
	}
	return IDX(r)
}

// Ref returns a mutable proxy reference at the iterator's position,
// equivalent to the mutable dereference operator*.
func (it Iterator[IDX, W]) Ref() Ref[IDX, W] {
	return Ref[IDX, W]{it: it}
}

// GetBits reads k (<= used bits) raw bits at the iterator's position,
// for block algorithms such as lexicographic compare.
func (it Iterator[IDX, W]) GetBits(k uint) W {
	return bitcodec.Extract(it.mem, it.word, it.offset, k, it.used)
}

// GetBitsAt reads k raw bits from the iterator's word at an explicit
// offset, ignoring the iterator's own offset.
func (it Iterator[IDX, W]) GetBitsAt(k, offset uint) W {
	return bitcodec.Extract(it.mem, it.word, offset, k, it.used)
}

// SetBits writes k raw bits at the iterator's position using the
// iterator's store policy.
func (it Iterator[IDX, W]) SetBits(x W, k uint) {
	bitcodec.Insert(it.mem, it.word, it.offset, k, it.used, x, it.storeFunc())
}

func (it Iterator[IDX, W]) storeFunc() bitcodec.Store[W] {
	if it.pol == policyPlain {
		return wordstore.Plain[W]
	}
	return wordstore.AtomicRMW[W]
}

// Ref is an ephemeral proxy reference returned by dereferencing a
// mutable Iterator: it converts to the element value on read (Get)
// and performs the iterator's configured masked read-modify-write on
// write (Set), because Go -- like C++ here -- cannot return a native
// reference to a sub-word quantity.
type Ref[IDX Integer, W Word] struct {
	it Iterator[IDX, W]
}

// Get reads the element the proxy refers to.
func (r Ref[IDX, W]) Get() IDX { return r.it.Get() }

// Set writes v through the proxy's configured store policy.
func (r Ref[IDX, W]) Set(v IDX) {
	bitcodec.Insert(r.it.mem, r.it.word, r.it.offset, r.it.bits, r.it.used, W(v), r.it.storeFunc())
}

// CAS atomically replaces the element with newVal if its current
// value equals expected, returning whether the swap happened. Only
// valid on proxies obtained from a CAS-capable container (used bits =
// word width - 1); other containers return ErrNotCASCapable.
func (r Ref[IDX, W]) CAS(newVal, expected IDX) (bool, error) {
	if r.it.pol != policyCAS {
		return false, ErrNotCASCapable
	}
	it := r.it
	wbits := bitcodec.WordBits[W]()
	nv, ev := W(newVal), W(expected)

	if !bitcodec.Straddles(it.offset, it.bits, it.used) {
		mask := bitcodec.Mask1[W](it.offset, it.bits, it.used)
		return wordstore.ConditionalCAS(&it.mem[it.word], mask, nv<<it.offset, ev<<it.offset), nil
	}

	over := bitcodec.Overflow(it.offset, it.bits, it.used)
	mask0 := bitcodec.Mask1[W](it.offset, it.bits, it.used)
	mask1 := bitcodec.Mask2[W](it.offset, it.bits, it.used)
	msb := W(1) << (wbits - 1)

	desired0 := (nv << it.offset) & mask0
	expected0 := (ev << it.offset) & mask0
	desired1 := nv >> (it.bits - over)
	expected1 := ev >> (it.bits - over)

	ok := wordstore.StraddleCAS(&it.mem[it.word], mask0, desired0, expected0, msb, &it.mem[it.word+1], mask1, desired1, expected1)
	return ok, nil
}

// SwapRefs exchanges the values two proxies refer to via a temporary
// of the element type, never by swapping the proxies' (word, offset)
// fields -- the default Go assignment would do the latter, which is
// wrong: it would swap which bits the proxies point at, not the bits
// themselves.
func SwapRefs[IDX Integer, W Word](a, b Ref[IDX, W]) {
	av, bv := a.Get(), b.Get()
	a.Set(bv)
	b.Set(av)
}

// ReverseIterator walks a container back to front, the Go analogue of
// compact_vector.hpp's reverse_iterator (a std::reverse_iterator
// adaptor over the forward iterator). Like its C++ counterpart, it
// holds the forward iterator one past the element it logically
// refers to, so RBegin() wraps End() and dereferencing it steps back
// one element first.
type ReverseIterator[IDX Integer, W Word] struct {
	base Iterator[IDX, W]
}

// Get returns the element the reverse iterator refers to.
func (r ReverseIterator[IDX, W]) Get() IDX { return r.base.Prev().Get() }

// Ref returns a mutable proxy for the element the reverse iterator
// refers to.
func (r ReverseIterator[IDX, W]) Ref() Ref[IDX, W] { return r.base.Prev().Ref() }

// Next moves the reverse iterator to the previous forward element
// (operator++ on std::reverse_iterator).
func (r ReverseIterator[IDX, W]) Next() ReverseIterator[IDX, W] {
	return ReverseIterator[IDX, W]{base: r.base.Prev()}
}

// Prev moves the reverse iterator to the next forward element
// (operator-- on std::reverse_iterator).
func (r ReverseIterator[IDX, W]) Prev() ReverseIterator[IDX, W] {
	return ReverseIterator[IDX, W]{base: r.base.Next()}
}

// Equal reports whether two reverse iterators reference the same
// position.
func (r ReverseIterator[IDX, W]) Equal(other ReverseIterator[IDX, W]) bool {
	return r.base.Equal(other.base)
}
