// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/cznic/mathutil"

// normalizeSize clamps n up to MinAllocSize and rounds it up to the next
// multiple of MinAllocSize. A request of 0 bytes rounds up to 8 rather
// than being treated as invalid.
func normalizeSize(n int) int {
	n = mathutil.Max(n, MinAllocSize)
	if rem := n % MinAllocSize; rem != 0 {
		n += MinAllocSize - rem
	}
	return n
}

// Alloc reserves numBytes bytes (after normalization to a positive
// multiple of MinAllocSize) for an object declaring numPointers candidate
// pointer slots at the head of its payload, and returns its address.
//
// Placement is first-fit in address order over the gaps the allocation
// table's ordering implies: the dynamic region is walked from its start,
// record by record, and the object lands in the first gap - inter-record
// or trailing - at least as large as the normalized size. Alloc never
// zeroes the returned payload.
func (h *Heap) Alloc(numBytes int, numPointers byte) (Address, error) {
	size := normalizeSize(numBytes)
	if size > 0xffff {
		return 0, &ErrOutOfSpace{Requested: size, LargestGap: h.cfg.Capacity - h.cfg.DynamicStart}
	}

	previousEnd := h.cfg.DynamicStart
	cursor := 0
	largestGap := 0
	found := false
	end := h.tableEnd()
	for pos := 0; pos < end && !found; pos += recordSize {
		r := h.recordAt(pos)
		gap := int(r.offset) - previousEnd
		largestGap = mathutil.Max(largestGap, gap)
		if gap >= size {
			cursor = pos
			found = true
			break
		}
		previousEnd = int(r.offset) + int(r.size)
		cursor = pos + recordSize
	}
	if !found {
		// Fell off the end of the live records: try the tail gap.
		tailGap := h.cfg.Capacity - previousEnd
		largestGap = mathutil.Max(largestGap, tailGap)
		if tailGap < size {
			return 0, &ErrOutOfSpace{Requested: size, LargestGap: largestGap}
		}
	}

	newOffset := previousEnd
	if err := h.insertAt(cursor, uint16(newOffset), uint16(size), numPointers); err != nil {
		return 0, err
	}
	return address(uint16(newOffset)), nil
}

// Calloc is Alloc followed by zeroing count*size payload bytes. The
// product, not its post-normalization rounding, is what Alloc sees; it
// returns *ErrOutOfSpace iff Alloc did.
func (h *Heap) Calloc(count, size int, numPointers byte) (Address, error) {
	total := count * size
	addr, err := h.Alloc(total, numPointers)
	if err != nil {
		return 0, err
	}
	r, _ := h.findRecord(h.offsetOf(addr))
	clear(h.buf[r.offset : int(r.offset)+int(r.size)])
	return addr, nil
}
