// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package container provides cost-aware, call-scoped sequence and
// associative containers built over an append-only arena.
//
// Both containers share one structural primitive, a singly-linked chain
// headed by a permanent sentinel record. Appending is O(1); positional and
// key lookups are O(n) linear scans. Linear scans are a deliberate choice:
// in the target cost model, scanning a small in-memory chain is cheaper than
// two random accesses into the external store, so no hashing layer is
// maintained.
//
// Containers never reclaim storage. Popping a sequence element or clearing a
// dict value unlinks or zeroes the record, but its arena slot stays
// allocated until the whole arena is released. A container's lifetime is
// exactly the lifetime of the arena that backs it.
//
// The associative container synchronizes with an external key/value store
// (see the store package). The store convention reads a zero value as
// "logically absent"; importing therefore silently skips zero-valued store
// entries, which makes a key explicitly stored as zero indistinguishable
// from a key never stored. This ambiguity is intentional and preserved, not
// resolved.
package container
