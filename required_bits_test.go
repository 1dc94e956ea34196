// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiredBits(t *testing.T) {
	require.EqualValues(t, 10, RequiredBits(1024, false))
	require.EqualValues(t, 11, RequiredBits(1024, true))
	require.EqualValues(t, 11, RequiredBits(1025, false))
	require.EqualValues(t, 12, RequiredBits(1025, true))
	require.EqualValues(t, 0, RequiredBits(0, false))
	require.EqualValues(t, 0, RequiredBits(1, false))
	require.EqualValues(t, 1, RequiredBits(1, true))
}
