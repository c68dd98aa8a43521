// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/cznic/mathutil"

	"github.com/cznic/p4heap/internal/bitset"
)

// GC runs one mark-and-sweep collection cycle, treating every address in
// roots as reachable, and returns the number of records freed.
//
// Marking snapshots the live record count, builds a mark bitmap sized to
// it, then traces from each root that falls inside the dynamic region. A
// candidate pointer only counts if it equals the exact starting address
// of a live allocation - interior pointers are never recognized, by
// design. Tracing uses an explicit work stack rather than recursion, so
// the deepest live-pointer chain (bounded by Config.MaxRecords()) never
// grows the Go call stack.
//
// Sweeping frees every unmarked record in descending index order. Deleting
// highest index first means every record not yet visited still sits at
// its original table position - deleting index i only ever shifts records
// at indices > i - so the snapshot bitmap's indexing stays valid for the
// rest of the walk without any restart. A forward walk that restarts from
// index 0 after each deletion does not have this property: after the
// first deletion, the record that slides into the freed slot is checked
// against the wrong bitmap bit, which can free a still-reachable record -
// an unmarked record sitting before a marked one in table order is enough
// to trigger it.
func (h *Heap) GC(roots []Address) int {
	marks := bitset.New(h.count())
	for _, root := range roots {
		if h.inDynamicRegion(uint64(root)) {
			h.mark(marks, uint16(root))
		}
	}
	return h.sweep(marks)
}

func (h *Heap) inDynamicRegion(addr uint64) bool {
	return addr >= uint64(h.cfg.DynamicStart) && addr <= uint64(h.cfg.Capacity-1)
}

// mark traces the live-pointer graph reachable from rootOffset, marking
// every record it visits in marks.
func (h *Heap) mark(marks *bitset.Set, rootOffset uint16) {
	stack := []uint16{rootOffset}
	for len(stack) > 0 {
		offset := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx, ok := h.recordIndex(offset)
		if !ok || marks.IsMarked(idx) {
			continue
		}
		marks.Mark(idx)

		r := h.recordByIndex(idx)
		maxScanBytes := mathutil.Min(int(r.ptrs)*PointerWidth, int(r.size))
		for i := 0; i+PointerWidth <= maxScanBytes; i += PointerWidth {
			candidate := readU64(h.buf, int(r.offset)+i)
			if candidate == 0 || !h.inDynamicRegion(candidate) {
				continue
			}
			childOffset := uint16(candidate)
			if _, ok := h.recordIndex(childOffset); ok {
				stack = append(stack, childOffset)
			}
		}
	}
}

// sweep frees every record whose index was not marked and returns the
// count freed, walking indices from last to first so every still-unvisited
// record keeps its original table position throughout.
func (h *Heap) sweep(marks *bitset.Set) int {
	freed := 0
	for idx := marks.Len() - 1; idx >= 0; idx-- {
		if marks.IsMarked(idx) {
			continue
		}
		r := h.recordByIndex(idx)
		h.Free(address(r.offset))
		freed++
	}
	return freed
}
