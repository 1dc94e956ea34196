package wordstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlain(t *testing.T) {
	var w uint64
	Plain(&w, 0x0F, 0x0A)
	require.EqualValues(t, 0x0A, w)
	Plain(&w, 0xF0, 0x50)
	require.EqualValues(t, 0x5A, w)
}

func TestAtomicRMWConcurrentDisjointBits(t *testing.T) {
	var w uint64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mask := uint64(0xF) << (uint(i) * 4)
			val := uint64(i+1) << (uint(i) * 4)
			AtomicRMW(&w, mask, val)
		}(i)
	}
	wg.Wait()
	for i := 0; i < 8; i++ {
		got := (w >> (uint(i) * 4)) & 0xF
		require.EqualValues(t, i+1, got)
	}
}

func TestConditionalCAS(t *testing.T) {
	var w uint64 = 0x00
	ok := ConditionalCAS(&w, 0xFF, 0x12, 0x00)
	require.True(t, ok)
	require.EqualValues(t, 0x12, w)

	// wrong expected value: must fail and leave w untouched
	ok = ConditionalCAS(&w, 0xFF, 0x99, 0x00)
	require.False(t, ok)
	require.EqualValues(t, 0x12, w)
}

func TestStraddleCAS(t *testing.T) {
	var w0, w1 uint64
	const msb = uint64(1) << 63
	mask0 := uint64(0xF) << 59 // bits 59-62 of word0 (4 low bits of a 5-bit element)
	mask1 := uint64(0x1)        // 1 overflow bit in word1

	ok := StraddleCAS(&w0, mask0, uint64(0xF)<<59, 0, msb, &w1, mask1, 1, 0)
	require.True(t, ok)
	require.EqualValues(t, 0, w0&msb, "lock bit must be cleared after commit")
	require.EqualValues(t, uint64(0xF)<<59, w0&mask0)
	require.EqualValues(t, 1, w1&mask1)
}

func TestStraddleCASFirstStepFails(t *testing.T) {
	var w0, w1 uint64
	const msb = uint64(1) << 63
	w0 |= msb // simulate lock already held
	mask0 := uint64(0xF) << 59
	mask1 := uint64(0x1)

	ok := StraddleCAS(&w0, mask0, uint64(0xF)<<59, 0, msb, &w1, mask1, 1, 0)
	require.False(t, ok)
	require.EqualValues(t, 0, w1)
}
