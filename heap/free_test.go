// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeIsIdempotentForUnknownAddress(t *testing.T) {
	h := Create()
	before := h.NumAllocs()

	h.Free(0)
	h.Free(Address(4096))
	h.Free(Address(h.cfg.Capacity - 1))

	assert.Equal(t, before, h.NumAllocs())
	assertInvariants(t, h)
}

func TestFreeClearsPayload(t *testing.T) {
	h := Create()
	a, err := h.Alloc(16, 2)
	require.NoError(t, err)
	require.True(t, h.WritePointer(a, 0, 42))

	h.Free(a)

	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(0), h.buf[int(a)+i])
	}
	assertInvariants(t, h)
}

func TestAllocFreeRoundtripRestoresTableShape(t *testing.T) {
	h := Create()
	a, err := h.Alloc(16, 0)
	require.NoError(t, err)
	before := h.NumAllocs()

	h.Free(a)
	assert.Equal(t, before-1, h.NumAllocs())

	b, err := h.Alloc(16, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b, "reallocating identical shape reuses the same address")
	assertInvariants(t, h)
}
