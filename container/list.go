// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package container

import (
	"fmt"
	"unsafe"

	"github.com/0xsoniclabs/scratch/arena"
	"github.com/0xsoniclabs/scratch/common"
)

// chained is implemented by record types to expose their chain link.
type chained interface {
	nextRef() arena.Ref
	setNext(arena.Ref)
}

// record constrains chain record types to pointers into an arena of T.
type record[T any] interface {
	*T
	chained
}

// list is the sentinel-headed singly-linked chain shared by Sequence and
// Dict. The head refers to a permanent sentinel record carrying no payload;
// tail refers to the last real record, or to the sentinel when the chain is
// empty. The chain from the sentinel reaches the tail in exactly count
// steps, and the tail's link is always nil.
//
// The list header is the single source of truth of the chain's structural
// state. Handles to containers are pointers to structs embedding this
// header, so every alias of a handle observes mutations.
type list[T any, P record[T]] struct {
	arena *arena.Arena[T]
	count uint32
	head  arena.Ref
	tail  arena.Ref
}

func newList[T any, P record[T]](a *arena.Arena[T]) list[T, P] {
	sentinel := a.New()
	return list[T, P]{arena: a, head: sentinel, tail: sentinel}
}

// append allocates a new record, links it behind the current tail, and
// returns it for the caller to populate. O(1).
func (l *list[T, P]) append() P {
	ref := l.arena.New() // zero-initialized, so the link starts nil
	l.linkTail(ref)
	return P(l.arena.Get(ref))
}

// linkTail links an already allocated record behind the current tail. The
// record must not be part of any chain yet and its link must be nil.
func (l *list[T, P]) linkTail(ref arena.Ref) {
	P(l.arena.Get(l.tail)).setNext(ref)
	l.tail = ref
	l.count++
}

// refAt resolves a zero-based position to the reference of its record by
// walking the chain from the sentinel. O(n).
func (l *list[T, P]) refAt(index uint32) (arena.Ref, error) {
	if index >= l.count {
		return arena.NilRef, fmt.Errorf("%w: index %d, size %d", common.ErrIndexOutOfBounds, index, l.count)
	}
	ref := l.head
	for i := uint32(0); i <= index; i++ {
		ref = P(l.arena.Get(ref)).nextRef()
		if ref == arena.NilRef {
			// A nil link before the counted position means the chain no
			// longer matches its header. Not recoverable.
			panic(fmt.Errorf("corrupted chain: nil link at position %d, size %d", i, l.count))
		}
	}
	return ref, nil
}

// nodeAt resolves a zero-based position to its record. O(n).
func (l *list[T, P]) nodeAt(index uint32) (P, error) {
	ref, err := l.refAt(index)
	if err != nil {
		return nil, err
	}
	return P(l.arena.Get(ref)), nil
}

// truncateTail unlinks the last record of the chain. The record's storage is
// not reclaimed; the arena is append-only. The chain must not be empty.
// O(n), as the new tail is found by walking from the sentinel.
func (l *list[T, P]) truncateTail() {
	if l.count == 1 {
		P(l.arena.Get(l.head)).setNext(arena.NilRef)
		l.tail = l.head
		l.count = 0
		return
	}
	ref, err := l.refAt(l.count - 2)
	if err != nil {
		panic(err) // count > 1, the position is always valid
	}
	P(l.arena.Get(ref)).setNext(arena.NilRef)
	l.tail = ref
	l.count--
}

// find scans the chain for the first record matching the predicate. Absence
// is a normal outcome, not an error. O(n).
func (l *list[T, P]) find(match func(P) bool) (P, bool) {
	ref := P(l.arena.Get(l.head)).nextRef()
	for ref != arena.NilRef {
		node := P(l.arena.Get(ref))
		if match(node) {
			return node, true
		}
		ref = node.nextRef()
	}
	return nil, false
}

// forEach calls the visitor for every record in chain order. O(n).
func (l *list[T, P]) forEach(visit func(P)) {
	ref := P(l.arena.Get(l.head)).nextRef()
	for ref != arena.NilRef {
		node := P(l.arena.Get(ref))
		visit(node)
		ref = node.nextRef()
	}
}

// size returns the number of records in the chain, excluding the sentinel.
func (l *list[T, P]) size() int {
	return int(l.count)
}

func (l *list[T, P]) getMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*l))
	mf.AddChild("arena", l.arena.GetMemoryFootprint())
	mf.SetNote(fmt.Sprintf("(items: %d)", l.count))
	return mf
}
