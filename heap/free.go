// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// Free deallocates the object at addr: its payload bytes are zeroed and
// its record is removed from the table, shifting later records left to
// keep the table dense. Freeing an address with no matching record,
// including Address(0), is a silent no-op - this is intentional and lets
// the collector's sweep call Free idempotently.
func (h *Heap) Free(addr Address) {
	offset := h.offsetOf(addr)
	r, ok := h.findRecord(offset)
	if !ok {
		return
	}

	clear(h.buf[int(r.offset) : int(r.offset)+int(r.size)])
	h.deleteAt(r.pos)
}
