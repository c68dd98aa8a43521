// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintAllocationsFormat(t *testing.T) {
	h := Create()
	_, err := h.Alloc(7, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	h.FprintAllocations(&buf)
	assert.Equal(t, "allocation list:\noffset 4096 size 8 pointers 2\n", buf.String())
}

func TestStatsAggregatesTableAndFreeSpans(t *testing.T) {
	h := Create()
	_, err := h.Alloc(16, 0)
	require.NoError(t, err)
	_, err = h.Alloc(32, 0)
	require.NoError(t, err)

	s := h.Stats()
	assert.Equal(t, 2, s.LiveRecords)
	assert.Equal(t, 48, s.LiveBytes)
	assert.Equal(t, 65536-4096-48, s.FreeBytes)
	assert.Equal(t, 65536-4096-48, s.LargestFree)
	assert.Equal(t, 3*recordSize, s.TableBytes)
}
