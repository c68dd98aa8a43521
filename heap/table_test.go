// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"sort"
	"testing"

	"github.com/cznic/sortutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvariants checks the table and free-span bookkeeping against h's
// current state. Most of this package's tests invoke it after their
// mutating calls.
func assertInvariants(t *testing.T, h *Heap) {
	t.Helper()

	var offsets []uint
	prevEnd := -1
	h.forEachRecord(func(r record) bool {
		require.True(t, int(r.offset) >= h.cfg.DynamicStart, "record offset %d below DynamicStart %d", r.offset, h.cfg.DynamicStart)
		require.True(t, int(r.offset)+int(r.size) <= h.cfg.Capacity, "record [%d,%d) exceeds capacity %d", r.offset, int(r.offset)+int(r.size), h.cfg.Capacity)
		require.True(t, r.size > 0 && r.size%MinAllocSize == 0, "size %d is not a positive multiple of %d", r.size, MinAllocSize)
		if prevEnd >= 0 {
			require.True(t, int(r.offset) >= prevEnd, "records overlap or are out of order: prevEnd=%d offset=%d", prevEnd, r.offset)
		}
		prevEnd = int(r.offset) + int(r.size)
		offsets = append(offsets, uint(r.offset))
		return true
	})
	assert.True(t, sort.IsSorted(sortutil.UintSlice(offsets)), "table offsets not ascending: %v", offsets)

	sentinelPos := h.tableEnd()
	assert.Equal(t, uint16(0), readU16(h.buf, sentinelPos), "sentinel at table end is not zero")

	// Derived consistency: free spans and record spans exactly partition
	// [DynamicStart, Capacity) and are disjoint.
	covered := h.cfg.DynamicStart
	spans := h.InferFreeList()
	h.forEachRecord(func(r record) bool {
		for len(spans) > 0 && spans[0].Start < int(r.offset) {
			assert.Equal(t, covered, spans[0].Start, "free span does not continue from covered prefix")
			covered = spans[0].End()
			spans = spans[1:]
		}
		assert.Equal(t, covered, int(r.offset), "gap between covered prefix and next record")
		covered = int(r.offset) + int(r.size)
		return true
	})
	for _, span := range spans {
		assert.Equal(t, covered, span.Start, "free span does not continue from covered prefix")
		covered = span.End()
	}
	assert.Equal(t, h.cfg.Capacity, covered, "records + free spans do not cover the whole dynamic region")
}

func TestEmptyHeap(t *testing.T) {
	h := Create()
	assert.Equal(t, 0, h.NumAllocs())
	spans := h.InferFreeList()
	require.Len(t, spans, 1)
	assert.Equal(t, FreeSpan{Start: 4096, Size: 65536 - 4096}, spans[0])
	assertInvariants(t, h)
}

func TestTableInsertAndDeleteAt(t *testing.T) {
	h := Create()
	require.NoError(t, h.insertAt(0, 4096, 16, 0))
	require.NoError(t, h.insertAt(recordSize, 4112, 16, 0))
	assert.Equal(t, 2, h.count())
	assertInvariants(t, h)

	r, ok := h.findRecord(4112)
	require.True(t, ok)
	assert.Equal(t, uint16(16), r.size)

	h.deleteAt(0)
	assert.Equal(t, 1, h.count())
	_, ok = h.findRecord(4096)
	assert.False(t, ok)
	_, ok = h.findRecord(4112)
	assert.True(t, ok)
	assertInvariants(t, h)
}

func TestTableFullReturnsErrTableFull(t *testing.T) {
	// DynamicStart of 2*recordSize bounds MaxRecords() to 1, but the
	// dynamic region is generously sized, so a second Alloc must fail on
	// table capacity, not on space.
	cfg := Config{DynamicStart: 2 * recordSize, Capacity: 2*recordSize + 64}
	h, err := New(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.MaxRecords())

	_, err = h.Alloc(MinAllocSize, 0)
	require.NoError(t, err)

	_, err = h.Alloc(MinAllocSize, 0)
	var tableFull *ErrTableFull
	require.ErrorAs(t, err, &tableFull)
}
