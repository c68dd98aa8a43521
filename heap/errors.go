// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "fmt"

// ErrInvalidConfig is returned by Config.Validate and New when a Config
// describes a heap whose metadata region or dynamic region cannot hold
// anything, or whose capacity exceeds what a 16-bit record offset can address.
type ErrInvalidConfig struct {
	Reason string
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("heap: invalid config: %s", e.Reason)
}

// ErrOutOfSpace is returned by Alloc/Calloc when no gap in the dynamic
// region, including the tail gap, is large enough for the (normalized)
// requested size.
type ErrOutOfSpace struct {
	Requested  int // normalized size requested, in bytes
	LargestGap int // largest contiguous free gap found while searching
}

func (e *ErrOutOfSpace) Error() string {
	return fmt.Sprintf("heap: out of space: requested %d bytes, largest free gap %d bytes", e.Requested, e.LargestGap)
}

// ErrTableFull is returned when inserting a new allocation record would
// overflow the metadata region.
type ErrTableFull struct {
	Count    int // current live record count
	MaxCount int // Config.MaxRecords()
}

func (e *ErrTableFull) Error() string {
	return fmt.Sprintf("heap: allocation table full: %d of %d records in use", e.Count, e.MaxCount)
}
