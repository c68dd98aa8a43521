// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// recordSize is the on-heap width, in bytes, of one allocation record:
// a big-endian u16 offset, a big-endian u16 size and a u8 pointer count.
const recordSize = 5

// PointerWidth is the host pointer width, in bytes, assumed for every
// object's candidate pointer slots. The module targets 64-bit hosts
// exclusively.
const PointerWidth = 8

// MinAllocSize is the smallest payload size, in bytes, a successful Alloc
// ever stores; smaller requests are rounded up.
const MinAllocSize = 8

// Address is a byte offset into a Heap's dynamic region, as returned by
// Alloc/Calloc and consumed by Free and by root lists passed to GC. The
// zero Address is reserved and never refers to a live object.
type Address uint32

// Config describes the fixed geometry of a Heap. It is a value passed to
// New so that tests can exercise small heaps without waiting on a 64KiB
// buffer, while DefaultConfig reproduces the standard geometry exactly
// (capacity 65536, dynamic region starting at 4096).
//
// Config's compatibility promise only allows adding new exported fields
// going forward.
type Config struct {
	// DynamicStart is D: the byte offset where the dynamic (payload)
	// region begins. Bytes [0, DynamicStart) hold the allocation table.
	DynamicStart int

	// Capacity is C: the total size in bytes of the heap's backing
	// buffer. The dynamic region is [DynamicStart, Capacity).
	Capacity int
}

// DefaultConfig returns the standard geometry: Capacity 65536,
// DynamicStart 4096.
func DefaultConfig() Config {
	return Config{DynamicStart: 4096, Capacity: 65536}
}

// Validate reports whether c describes a usable heap: the metadata region
// must hold at least one record plus the sentinel, and the dynamic region
// must be able to hold at least one minimum-size allocation, and Capacity
// must not exceed 65536 so that every offset fits a record's u16 field.
func (c Config) Validate() error {
	if c.DynamicStart <= 0 {
		return &ErrInvalidConfig{Reason: "DynamicStart must be positive"}
	}
	if c.Capacity <= c.DynamicStart {
		return &ErrInvalidConfig{Reason: "Capacity must exceed DynamicStart"}
	}
	if c.Capacity > 1<<16 {
		return &ErrInvalidConfig{Reason: "Capacity must not exceed 65536"}
	}
	if c.DynamicStart < 2*recordSize {
		return &ErrInvalidConfig{Reason: "metadata region too small to hold a record and a sentinel"}
	}
	if c.Capacity-c.DynamicStart < MinAllocSize {
		return &ErrInvalidConfig{Reason: "dynamic region too small to hold a minimum-size allocation"}
	}
	return nil
}

// MaxRecords returns the maximum number of concurrently live allocation
// records the metadata region can hold: floor((DynamicStart - 2) /
// recordSize), reserving at least the two sentinel offset bytes that
// must always read back as zero past the last live record.
func (c Config) MaxRecords() int {
	return (c.DynamicStart - 2) / recordSize
}

// Heap is a bounded, byte-addressable managed heap: a single owned buffer
// split into an allocation table (metadata region) and object payloads
// (dynamic region). A Heap is not safe for concurrent use.
type Heap struct {
	cfg Config
	buf []byte
}

// Create returns a new, zeroed Heap using DefaultConfig - the programmatic
// surface's create().
func Create() *Heap {
	h, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid; a failure here is a bug in
		// DefaultConfig or Validate, not a runtime condition.
		panic(err)
	}
	return h
}

// New returns a new, zeroed Heap with the given geometry, or an
// *ErrInvalidConfig if cfg cannot hold anything.
func New(cfg Config) (*Heap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Heap{cfg: cfg, buf: make([]byte, cfg.Capacity)}, nil
}

// Config returns the heap's geometry.
func (h *Heap) Config() Config { return h.cfg }

// address translates an in-table offset to the caller-facing Address.
func address(offset uint16) Address { return Address(offset) }

// offsetOf translates a caller-facing Address back to an in-table offset.
// Addresses in this heap never exceed 16 bits because Validate bounds
// Capacity to the range of the uint16 offset field in the on-heap record
// format.
func (h *Heap) offsetOf(addr Address) uint16 { return uint16(addr) }
