// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dgryski/go-farm"
	"github.com/stretchr/testify/require"
)

func TestCASVectorBasic(t *testing.T) {
	v, err := NewCASVector[uint64, uint64](8, 4)
	require.NoError(t, err)

	ok, err := v.CAS(0, 42, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 42, v.Get(0))

	ok, err = v.CAS(0, 7, 0) // expected stale now
	require.NoError(t, err)
	require.False(t, ok)
	require.EqualValues(t, 42, v.Get(0))
}

func TestCASVectorStraddlingElement(t *testing.T) {
	// used bits = 63 on a 64-bit word; with bits=5, element 12 starts
	// at bit 60 and straddles into the next word.
	v, err := NewCASVector[uint64, uint64](5, 13)
	require.NoError(t, err)

	it := v.Begin().Advance(12)
	ref := it.Ref()
	ok, err := ref.CAS(0x15, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 0x15, ref.Get())

	ok, err = ref.CAS(0x01, 0x10) // wrong expected value
	require.NoError(t, err)
	require.False(t, ok)
	require.EqualValues(t, 0x15, ref.Get())
}

func TestNonCASVectorRejectsCAS(t *testing.T) {
	v, err := NewVector[uint64, uint64](8, 4)
	require.NoError(t, err)
	_, err = v.Begin().Ref().CAS(1, 0)
	require.ErrorIs(t, err, ErrNotCASCapable)

	cv, err := NewConcurrentVector[uint64, uint64](8, 4)
	require.NoError(t, err)
	_, err = cv.Begin().Ref().CAS(1, 0)
	require.ErrorIs(t, err, ErrNotCASCapable)
}

// TestCASVectorManyGoroutinesClaimEveryElement exercises scenario 4 /
// invariant 9 from the spec: N goroutines race to claim every element
// of a zero-initialized CAS vector with cas(id, 0); exactly one
// goroutine wins each element, and the total number of successes
// across all goroutines equals the element count.
func TestCASVectorManyGoroutinesClaimEveryElement(t *testing.T) {
	const n = 1 << 14 // keep the race tractable under -race
	const goroutines = 4

	v, err := NewCASVector[uint64, uint64](3, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v.Set(i, 0)
	}

	var totalSuccesses int64
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		// derive a reproducible, non-zero per-goroutine id from farm.Hash64
		// instead of math/rand, for deterministic test output.
		id := uint64(farm.Hash64([]byte{byte(g)})%4) + 1
		go func(id uint64) {
			defer wg.Done()
			successes := int64(0)
			for i := 0; i < n; i++ {
				ok, err := v.CAS(i, id, 0)
				require.NoError(t, err)
				if ok {
					successes++
				}
			}
			atomic.AddInt64(&totalSuccesses, successes)
		}(id)
	}
	wg.Wait()

	require.EqualValues(t, n, totalSuccesses)
	for i := 0; i < n; i++ {
		got := v.Get(i)
		require.GreaterOrEqual(t, got, uint64(1))
		require.LessOrEqual(t, got, uint64(4))
	}
}
