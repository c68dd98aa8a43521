// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// The allocation table occupies h.buf[0:h.cfg.DynamicStart] as a packed
// sequence of live 5-byte records (offset, size, pointer count), in
// strictly increasing offset order, terminated by a 5-byte zero sentinel.
// Every method here operates purely on the raw bytes of that region so
// the on-heap format stays byte-exact.

// record is the in-memory view of one table entry, decoded from the
// metadata region. pos is the entry's byte position within the table,
// kept alongside for callers that go on to mutate the table at that spot.
type record struct {
	pos    int
	offset uint16
	size   uint16
	ptrs   byte
}

// recordAt decodes the record at byte position pos in the metadata
// region. The caller must ensure pos is a valid record slot.
func (h *Heap) recordAt(pos int) record {
	return record{
		pos:    pos,
		offset: readU16(h.buf, pos),
		size:   readU16(h.buf, pos+2),
		ptrs:   h.buf[pos+4],
	}
}

// writeRecordAt encodes r's offset, size and pointer count at r.pos.
func (h *Heap) writeRecordAt(r record) {
	writeU16(h.buf, r.pos, r.offset)
	writeU16(h.buf, r.pos+2, r.size)
	h.buf[r.pos+4] = r.ptrs
}

// tableEnd returns the byte position of the sentinel: the first table
// slot whose offset field is zero.
func (h *Heap) tableEnd() int {
	pos := 0
	for readU16(h.buf, pos) != 0 {
		pos += recordSize
	}
	return pos
}

// count returns the number of live records in the table.
func (h *Heap) count() int {
	return h.tableEnd() / recordSize
}

// NumAllocs returns the number of currently live allocations - the
// programmatic surface's num_allocs().
func (h *Heap) NumAllocs() int { return h.count() }

// findRecord returns the live record with the given offset, or ok == false
// if no such record exists.
func (h *Heap) findRecord(offset uint16) (r record, ok bool) {
	end := h.tableEnd()
	for pos := 0; pos < end; pos += recordSize {
		if readU16(h.buf, pos) == offset {
			return h.recordAt(pos), true
		}
	}
	return record{}, false
}

// recordIndex returns the zero-based index of the live record with the
// given offset, or ok == false if no such record exists.
func (h *Heap) recordIndex(offset uint16) (idx int, ok bool) {
	end := h.tableEnd()
	for pos, i := 0, 0; pos < end; pos, i = pos+recordSize, i+1 {
		if readU16(h.buf, pos) == offset {
			return i, true
		}
	}
	return -1, false
}

// recordByIndex decodes the i'th live record in table order. The caller
// must ensure 0 <= i < count().
func (h *Heap) recordByIndex(i int) record {
	return h.recordAt(i * recordSize)
}

// forEachRecord walks the live records in table order, stopping early if
// fn returns false.
func (h *Heap) forEachRecord(fn func(r record) bool) {
	end := h.tableEnd()
	for pos := 0; pos < end; pos += recordSize {
		if !fn(h.recordAt(pos)) {
			return
		}
	}
}

// insertAt shifts the table tail (including the sentinel slot) right by
// one record width starting at cursor, then writes the new record at
// cursor. It reports *ErrTableFull if the resulting table would no longer
// fit in the metadata region.
func (h *Heap) insertAt(cursor int, offset, size uint16, ptrs byte) error {
	end := h.tableEnd()
	count := end / recordSize
	if count+1 > h.cfg.MaxRecords() {
		return &ErrTableFull{Count: count, MaxCount: h.cfg.MaxRecords()}
	}

	// Shift [cursor, end+recordSize) right by recordSize bytes, carrying
	// the sentinel along. copy() is overlap-safe regardless of direction.
	copy(h.buf[cursor+recordSize:end+2*recordSize], h.buf[cursor:end+recordSize])
	h.writeRecordAt(record{pos: cursor, offset: offset, size: size, ptrs: ptrs})
	return nil
}

// deleteAt shifts the table tail left by one record width, overwriting the
// record at cursor. The sentinel is carried along implicitly because the
// shifted range includes the recordSize bytes past the last live record.
func (h *Heap) deleteAt(cursor int) {
	end := h.tableEnd()
	// Shift [cursor+recordSize, end+recordSize) left to cursor. The old
	// sentinel's 5 zero bytes land at the new end, becoming the new one.
	copy(h.buf[cursor:end], h.buf[cursor+recordSize:end+recordSize])
}
