// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import (
	"fmt"
	"log/slog"

	"github.com/bpowers/packedvec/internal/bitcodec"
	"github.com/bpowers/packedvec/internal/numa"
	"github.com/bpowers/packedvec/internal/wordbytes"
	"github.com/bpowers/packedvec/internal/wordstore"
)

// policy selects which word-store discipline a container's element
// writes go through; it is fixed for the lifetime of a container by
// the façade (Vector, ConcurrentVector, CASVector) that created it.
type policy int

const (
	policyPlain policy = iota
	policyAtomic
	policyCAS
)

// container is the storage engine shared by the three façades: it
// owns the word buffer, computes element<->(word,offset), and grows on
// demand. It is a direct generalization of compact_vector.hpp's
// vector_imp::vector, parameterized at runtime (rather than via a
// template non-type parameter) on usedBits and the store policy.
type container[IDX Integer, W Word] struct {
	mem    []W
	n      int
	cap    int
	bits   uint
	used   uint
	signed bool
	pol    policy
	alloc  Allocator[W]
	logger *slog.Logger
}

func elementsToWords(n int, bits, used uint) int {
	if n == 0 {
		return 0
	}
	total := uint(n) * bits
	words := total / used
	if total%used != 0 {
		words++
	}
	return int(words)
}

func newContainer[IDX Integer, W Word](bits uint, n int, used uint, pol policy, opts ...Option[W]) (*container[IDX, W], error) {
	o := defaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}

	wbits := bitcodec.WordBits[W]()
	if used > wbits {
		return nil, fmt.Errorf("%w: used bits %d exceeds word width %d", ErrBitsOutOfRange, used, wbits)
	}
	if bits == 0 || bits > used {
		return nil, fmt.Errorf("%w: %d bits exceeds %d usable bits per word", ErrBitsOutOfRange, bits, used)
	}
	if bits > idxBits[IDX]() {
		return nil, fmt.Errorf("%w: %d bits exceeds %d-bit element type", ErrBitsOutOfRange, bits, idxBits[IDX]())
	}
	if idxBits[IDX]() > wbits {
		return nil, fmt.Errorf("%w: %d-bit element type exceeds %d-bit word", ErrBitsOutOfRange, idxBits[IDX](), wbits)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrBitsOutOfRange, n)
	}

	nWords := elementsToWords(n, bits, used)
	mem, err := o.alloc.Allocate(nWords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}

	if o.numa {
		numa.Touch(wordbytes.Bytes(mem), o.logger)
	}

	return &container[IDX, W]{
		mem:    mem,
		n:      n,
		cap:    n,
		bits:   bits,
		used:   used,
		signed: isSigned[IDX](),
		pol:    pol,
		alloc:  o.alloc,
		logger: o.logger,
	}, nil
}

func (c *container[IDX, W]) locate(i int) (wordIdx int, offset uint) {
	startBit := uint(i) * c.bits
	return int(startBit / c.used), startBit % c.used
}

// Size returns the number of elements currently stored.
func (c *container[IDX, W]) Size() int { return c.n }

// Capacity returns the number of elements the current buffer can hold
// without reallocating.
func (c *container[IDX, W]) Capacity() int { return c.cap }

// Bits returns the number of bits occupied by each element.
func (c *container[IDX, W]) Bits() uint { return c.bits }

// Empty reports whether the container holds zero elements.
func (c *container[IDX, W]) Empty() bool { return c.n == 0 }

// Raw exposes the underlying word buffer, sized for Capacity, not
// Size. Mutating it directly bypasses all store-policy guarantees.
func (c *container[IDX, W]) Raw() []W { return c.mem }

func (c *container[IDX, W]) storeFunc() bitcodec.Store[W] {
	switch c.pol {
	case policyPlain:
		return wordstore.Plain[W]
	default:
		return wordstore.AtomicRMW[W]
	}
}

// Get returns the element at i without a bounds check, mirroring
// operator[].
func (c *container[IDX, W]) Get(i int) IDX {
	wordIdx, offset := c.locate(i)
	r := bitcodec.Extract(c.mem, wordIdx, offset, c.bits, c.used)
	if c.signed {
		r = bitcodec.SignExtend(r, c.bits)
	}
	return IDX(r)
}

// At returns the element at i, or ErrIndexOutOfRange if i >= Size.
func (c *container[IDX, W]) At(i int) (IDX, error) {
	if i < 0 || i >= c.n {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, c.n)
	}
	return c.Get(i), nil
}

// Set writes v at index i without a bounds check.
func (c *container[IDX, W]) Set(i int, v IDX) {
	wordIdx, offset := c.locate(i)
	bitcodec.Insert(c.mem, wordIdx, offset, c.bits, c.used, W(v), c.storeFunc())
}

// Front returns the first element; the caller must ensure the
// container is non-empty.
func (c *container[IDX, W]) Front() IDX { return c.Get(0) }

// Back returns the last element; the caller must ensure the container
// is non-empty.
func (c *container[IDX, W]) Back() IDX { return c.Get(c.n - 1) }

func (c *container[IDX, W]) grow(newCap int) error {
	nWords := elementsToWords(newCap, c.bits, c.used)
	newMem, err := c.alloc.Allocate(nWords)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	copy(newMem, c.mem)
	c.alloc.Free(c.mem)
	c.mem = newMem
	c.cap = newCap
	return nil
}

// PushBack appends x, growing capacity (doubling, minimum 1) if the
// container is full.
func (c *container[IDX, W]) PushBack(x IDX) error {
	if c.n == c.cap {
		newCap := c.cap * 2
		if newCap == 0 {
			newCap = 1
		}
		if err := c.grow(newCap); err != nil {
			return err
		}
	}
	c.n++
	c.Set(c.n-1, x)
	return nil
}

// PopBack discards the last element.
func (c *container[IDX, W]) PopBack() {
	if c.n > 0 {
		c.n--
	}
}

// Clear truncates the container to zero elements without releasing or
// zeroing the underlying buffer.
func (c *container[IDX, W]) Clear() { c.n = 0 }

// Resize changes Size to m. If m > Size, new slots are filled with
// fill (growing capacity as needed); if m < Size, elements beyond m
// are simply discarded.
func (c *container[IDX, W]) Resize(m int, fill IDX) error {
	if m < 0 {
		return fmt.Errorf("%w: negative size %d", ErrBitsOutOfRange, m)
	}
	if m <= c.n {
		c.n = m
		return nil
	}
	if m > c.cap {
		if err := c.grow(m); err != nil {
			return err
		}
	}
	old := c.n
	c.n = m
	for i := old; i < m; i++ {
		c.Set(i, fill)
	}
	return nil
}

// Assign replaces the contents with the given values.
func (c *container[IDX, W]) Assign(values []IDX) error {
	if len(values) > c.cap {
		if err := c.grow(len(values)); err != nil {
			return err
		}
	}
	c.n = len(values)
	for i, v := range values {
		c.Set(i, v)
	}
	return nil
}

// AssignN sets the container to m copies of v.
func (c *container[IDX, W]) AssignN(m int, v IDX) error {
	if m > c.cap {
		if err := c.grow(m); err != nil {
			return err
		}
	}
	c.n = m
	for i := 0; i < m; i++ {
		c.Set(i, v)
	}
	return nil
}

// Emplace inserts x at pos, shifting later elements up by one.
func (c *container[IDX, W]) Emplace(pos int, x IDX) error {
	if pos < 0 || pos > c.n {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, pos, c.n)
	}
	if err := c.PushBack(x); err != nil { // grows capacity and bumps n
		return err
	}
	for i := c.n - 1; i > pos; i-- {
		c.Set(i, c.Get(i-1))
	}
	c.Set(pos, x)
	return nil
}

// Erase removes the element at pos, shifting later elements down by
// one, and returns the (now logical) index of the element that took
// its place.
func (c *container[IDX, W]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= c.n {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, pos, c.n)
	}
	return c.EraseRange(pos, pos+1)
}

// EraseRange removes elements [first, last), shifting later elements
// down, and returns first.
func (c *container[IDX, W]) EraseRange(first, last int) (int, error) {
	if first < 0 || last > c.n || first > last {
		return 0, fmt.Errorf("%w: range [%d,%d), size %d", ErrIndexOutOfRange, first, last, c.n)
	}
	shift := last - first
	for i := last; i < c.n; i++ {
		c.Set(i-shift, c.Get(i))
	}
	c.n -= shift
	return first, nil
}
