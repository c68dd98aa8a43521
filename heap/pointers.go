// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// WritePointer stores target into object addr's slot'th pointer-sized
// slot. Callers use this to build up the pointer graphs a collection
// cycle traces; slot must be less than the object's declared pointer
// count and within its payload.
func (h *Heap) WritePointer(addr Address, slot int, target Address) bool {
	r, ok := h.findRecord(h.offsetOf(addr))
	if !ok {
		return false
	}
	off := int(r.offset) + slot*PointerWidth
	if slot >= int(r.ptrs) || off+PointerWidth > int(r.offset)+int(r.size) {
		return false
	}
	writeU64(h.buf, off, uint64(target))
	return true
}

// ReadPointer loads the slot'th pointer-sized candidate from object addr's
// payload, mirroring what the collector itself reads during marking.
func (h *Heap) ReadPointer(addr Address, slot int) (Address, bool) {
	r, ok := h.findRecord(h.offsetOf(addr))
	if !ok {
		return 0, false
	}
	off := int(r.offset) + slot*PointerWidth
	if slot >= int(r.ptrs) || off+PointerWidth > int(r.offset)+int(r.size) {
		return 0, false
	}
	return Address(readU64(h.buf, off)), true
}
