// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeVec(t *testing.T, bits uint, vals []uint64) *Vector[uint64, uint64] {
	t.Helper()
	v, err := NewEmptyVector[uint64, uint64](bits)
	require.NoError(t, err)
	require.NoError(t, v.Assign(vals))
	return v
}

func TestCompareMatchesElementOrder(t *testing.T) {
	cases := []struct {
		a, b []uint64
	}{
		{[]uint64{1, 2, 3}, []uint64{1, 2, 3}},
		{[]uint64{1, 2, 3}, []uint64{1, 2, 4}},
		{[]uint64{1, 2, 4}, []uint64{1, 2, 3}},
		{[]uint64{1, 2}, []uint64{1, 2, 0}},
		{[]uint64{1, 2, 0}, []uint64{1, 2}},
		{[]uint64{}, []uint64{0}},
		{[]uint64{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, []uint64{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 6}},
	}
	for _, bits := range []uint{1, 3, 4, 7, 8, 16, 32} {
		for _, c := range cases {
			a := makeVec(t, bits, c.a)
			b := makeVec(t, bits, c.b)
			got := Compare(a.Begin(), len(c.a), b.Begin(), len(c.b))
			want := elementwiseLess(collect(a), collect(b))
			require.Equal(t, want, got, "bits=%d a=%v b=%v", bits, c.a, c.b)
		}
	}
}

func elementwiseLess(a, b []uint64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
