// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"io"
	"os"
)

// ShowAllocations writes a human-readable listing of the live allocation
// table to os.Stdout, one line per record in table order:
//
//	offset <offset> size <size> pointers <count>
//
// The format is diagnostic only and is not part of the compatibility
// surface.
func (h *Heap) ShowAllocations() {
	h.FprintAllocations(os.Stdout)
}

// FprintAllocations is ShowAllocations generalized to an arbitrary writer,
// so callers (notably cmd/p4dump and this package's own tests) do not have
// to capture os.Stdout to check the output.
func (h *Heap) FprintAllocations(w io.Writer) {
	fmt.Fprintln(w, "allocation list:")
	h.forEachRecord(func(r record) bool {
		fmt.Fprintf(w, "offset %d size %d pointers %d\n", r.offset, r.size, r.ptrs)
		return true
	})
}

// Stats summarizes the table and free spans in one read-only pass. It is
// derived entirely from the record count and the free-span enumerator and
// changes no heap state.
type Stats struct {
	LiveRecords int
	LiveBytes   int
	FreeBytes   int
	LargestFree int
	TableBytes  int
}

// Stats computes aggregate counters over the current table and free-span
// list.
func (h *Heap) Stats() Stats {
	var s Stats
	h.forEachRecord(func(r record) bool {
		s.LiveRecords++
		s.LiveBytes += int(r.size)
		return true
	})
	s.TableBytes = (s.LiveRecords + 1) * recordSize
	for _, span := range h.InferFreeList() {
		s.FreeBytes += span.Size
		if span.Size > s.LargestFree {
			s.LargestFree = span.Size
		}
	}
	return s
}
