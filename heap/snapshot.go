// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cznic/fileutil"
	"github.com/cznic/zappy"
)

// snapshotMagic tags a p4heap snapshot file so Load can reject unrelated
// files quickly instead of misinterpreting their bytes as a heap buffer.
const snapshotMagic = "P4HP"

// Dump writes a zappy-compressed snapshot of h's entire buffer to path, as
// a supplemental convenience outside the core heap's scope: the Heap
// itself persists nothing and is unaware snapshots exist. The header
// records the geometry so Load can reconstruct an identically configured
// Heap.
func (h *Heap) Dump(path string) error {
	compressed, err := zappy.Encode(nil, h.buf)
	if err != nil {
		return fmt.Errorf("heap: compress snapshot: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := io.WriteString(w, snapshotMagic); err != nil {
		return err
	}
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(h.cfg.DynamicStart))
	binary.BigEndian.PutUint32(hdr[4:8], uint32(h.cfg.Capacity))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(compressed); err != nil {
		return err
	}
	return w.Flush()
}

// DumpSparse writes an uncompressed snapshot of h's buffer to path and
// punches a hole over every free span at or above one page (4096 bytes).
// It trades the smaller, but opaque, compressed format of Dump for a raw
// file whose apparent size is the full buffer while its large free spans
// occupy no disk blocks. The file has no header and Load does not read it.
func (h *Heap) DumpSparse(path string) error {
	const pageSize = 4096

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteAt(h.buf, 0); err != nil {
		return err
	}

	for _, span := range h.InferFreeList() {
		if span.Size < pageSize {
			continue
		}
		if err := fileutil.PunchHole(f, int64(span.Start), int64(span.Size)); err != nil {
			return err
		}
	}
	return nil
}

// Load reconstructs a Heap from a snapshot written by Dump.
func Load(path string) (*Heap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("heap: read snapshot header: %w", err)
	}
	if string(magic) != snapshotMagic {
		return nil, fmt.Errorf("heap: not a p4heap snapshot: bad magic")
	}

	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("heap: read snapshot geometry: %w", err)
	}
	cfg := Config{
		DynamicStart: int(binary.BigEndian.Uint32(hdr[0:4])),
		Capacity:     int(binary.BigEndian.Uint32(hdr[4:8])),
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	buf, err := zappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("heap: decompress snapshot: %w", err)
	}
	if len(buf) != cfg.Capacity {
		return nil, fmt.Errorf("heap: snapshot buffer length %d does not match capacity %d", len(buf), cfg.Capacity)
	}

	h, err := New(cfg)
	if err != nil {
		return nil, err
	}
	copy(h.buf, buf)
	return h, nil
}
