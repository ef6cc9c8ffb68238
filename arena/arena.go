// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package arena provides an append-only bump allocator handing out
// fixed-size records addressed by stable references. Records are never
// individually freed; releasing the arena releases every record and every
// container built on it.
package arena

import (
	"fmt"
	"unsafe"

	"github.com/0xsoniclabs/scratch/common"
	"github.com/pbnjay/memory"
)

// Ref identifies a record allocated from an Arena. References remain valid
// for the whole lifetime of the arena; records never move.
type Ref uint32

// NilRef is the null reference. The arena reserves its first slot at
// construction time so that no live record is ever addressed by NilRef,
// which lets zero-initialized records start with a nil link.
const NilRef Ref = 0

// defaultPageItems is the number of records per allocation page. Pages are
// allocated separately and never moved, keeping record addresses stable.
const defaultPageItems = 1 << 12

// Arena is an append-only allocator of records of type T. The allocation
// cursor only grows; there is no free operation. Growing past the configured
// limit is fatal (see New).
//
// An arena may back multiple containers at once; the containers' node chains
// must not be interleaved by any single mutating call.
type Arena[T any] struct {
	pages     [][]T
	pageItems uint32
	size      uint32 // < next free slot, the bump cursor
	limit     uint32
}

// New creates an arena whose growth limit is derived from the total system
// memory. Exceeding the limit panics with common.ErrAllocationFailure;
// allocation failure is not a recoverable condition in this cost model.
func New[T any]() *Arena[T] {
	return NewWithLimit[T](defaultLimit[T]())
}

// NewWithLimit creates an arena holding at most the given number of records.
func NewWithLimit[T any](limit int) *Arena[T] {
	res := &Arena[T]{
		pageItems: defaultPageItems,
		limit:     uint32(min(uint64(limit)+1, 1<<32-1)), // +1 for the reserved nil slot
	}
	res.reserve(1) // slot 0 is reserved for NilRef
	return res
}

// defaultLimit caps the arena at half the total system memory, so that a
// runaway caller aborts before the host starts swapping.
func defaultLimit[T any]() int {
	var t T
	itemSize := unsafe.Sizeof(t)
	if itemSize == 0 {
		itemSize = 1
	}
	limit := memory.TotalMemory() / 2 / uint64(itemSize)
	if limit > 1<<32-2 {
		limit = 1<<32 - 2
	}
	return int(limit)
}

// New allocates a single zero-initialized record and returns its reference.
func (a *Arena[T]) New() Ref {
	return a.reserve(1)
}

// NewBulk reserves n consecutive records at once and returns the reference
// of the first one; the i-th reserved record is addressed by the result
// plus Ref(i). Bulk reservation is the fast path for loading a container
// from a materialized sequence without per-record bookkeeping.
func (a *Arena[T]) NewBulk(n int) Ref {
	if n <= 0 {
		panic(fmt.Errorf("%w: invalid bulk reservation of %d records", common.ErrAllocationFailure, n))
	}
	return a.reserve(uint32(n))
}

func (a *Arena[T]) reserve(n uint32) Ref {
	if uint64(a.size)+uint64(n) > uint64(a.limit) {
		panic(fmt.Errorf("%w: cannot grow arena from %d by %d records, limit %d",
			common.ErrAllocationFailure, a.size, n, a.limit))
	}
	ref := Ref(a.size)
	a.size += n
	for a.size > uint32(len(a.pages))*a.pageItems {
		a.pages = append(a.pages, make([]T, a.pageItems))
	}
	return ref
}

// Get resolves a reference to its record. The returned pointer stays valid
// and stable for the lifetime of the arena. Resolving NilRef or a reference
// beyond the allocation cursor indicates structural corruption and is fatal.
func (a *Arena[T]) Get(ref Ref) *T {
	if ref == NilRef || uint32(ref) >= a.size {
		panic(fmt.Errorf("invalid arena reference %d, allocated %d", ref, a.size))
	}
	return &a.pages[uint32(ref)/a.pageItems][uint32(ref)%a.pageItems]
}

// Size returns the number of records allocated so far.
func (a *Arena[T]) Size() int {
	return int(a.size) - 1 // without the reserved nil slot
}

// GetMemoryFootprint provides the size of the arena in memory in bytes.
func (a *Arena[T]) GetMemoryFootprint() *common.MemoryFootprint {
	var t T
	pagesSize := uintptr(len(a.pages)) * uintptr(a.pageItems) * unsafe.Sizeof(t)
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*a) + pagesSize)
	mf.SetNote(fmt.Sprintf("(records: %d)", a.Size()))
	return mf
}
