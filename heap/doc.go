// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package heap implements a bounded, byte-addressable managed heap with
explicit allocation, explicit deallocation and a tracing mark-and-sweep
garbage collector driven by externally supplied root addresses.

A Heap is a single, fixed capacity []byte partitioned into a metadata
region holding a packed, ordered table of allocation records, and a
dynamic region holding object payloads. The table doubles as the free
space oracle: there is no separate free list kept at steady state.
Allocation is first-fit in address order; deallocation clears the
payload and deletes the record, shifting the table to stay dense; the
collector marks records reachable from the caller's roots by walking
object payloads for pointer-sized candidates and sweeps the rest via
the same deallocation path.

The heap does not discover roots on its own and keeps no runtime stack
map - the caller supplies every root address on every collection. The
heap is not safe for concurrent use; callers needing that must add
their own mutual exclusion.

*/
package heap
