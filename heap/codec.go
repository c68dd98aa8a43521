// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// readU16 reads a big-endian uint16 from buf at off. The caller guarantees
// off+1 is within buf.
func readU16(buf []byte, off int) uint16 {
	return uint16(buf[off])<<8 | uint16(buf[off+1])
}

// writeU16 writes v as a big-endian uint16 to buf at off. The caller
// guarantees off+1 is within buf.
func writeU16(buf []byte, off int, v uint16) {
	buf[off] = byte(v >> 8)
	buf[off+1] = byte(v)
}

// readU64 reads a big-endian uint64 from buf at off. Pointer slots are
// encoded this width regardless of the small offsets this module's
// addresses actually need, to match the host pointer width (see
// PointerWidth).
func readU64(buf []byte, off int) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(buf[off+i])
	}
	return v
}

// writeU64 writes v as a big-endian uint64 to buf at off.
func writeU64(buf []byte, off int, v uint64) {
	for i := 7; i >= 0; i-- {
		buf[off+i] = byte(v)
		v >>= 8
	}
}
