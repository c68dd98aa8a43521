// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// FreeSpan is a maximal contiguous unoccupied byte range within the
// dynamic region: [Start, Start+Size). Spans are derived, never stored;
// see InferFreeList.
type FreeSpan struct {
	Start int
	Size  int
}

// End returns Start + Size.
func (s FreeSpan) End() int { return s.Start + s.Size }

// InferFreeList derives the ascending list of free spans implied by the
// current table. It is a pure read: no heap state is mutated, and the
// returned slice is owned by the caller.
func (h *Heap) InferFreeList() []FreeSpan {
	var spans []FreeSpan
	currentStart := h.cfg.DynamicStart
	h.forEachRecord(func(r record) bool {
		if int(r.offset) > currentStart {
			spans = append(spans, FreeSpan{Start: currentStart, Size: int(r.offset) - currentStart})
		}
		currentStart = int(r.offset) + int(r.size)
		return true
	})
	if currentStart <= h.cfg.Capacity-1 {
		spans = append(spans, FreeSpan{Start: currentStart, Size: h.cfg.Capacity - currentStart})
	}
	return spans
}
