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
	"encoding/binary"
	"fmt"

	"github.com/0xsoniclabs/scratch/arena"
	"github.com/0xsoniclabs/scratch/common"
)

// Node is the record type of sequence chains. Its fields are managed by the
// Sequence; it is exported only to let callers own the backing arena.
type Node struct {
	next  arena.Ref
	value common.Value
}

func (n *Node) nextRef() arena.Ref {
	return n.next
}

func (n *Node) setNext(ref arena.Ref) {
	n.next = ref
}

// Sequence is an append-optimized positional container of values backed by
// an arena. Pushing is O(1); positional access is an O(n) scan. A *Sequence
// is a handle: copies of the handle share the same chain state.
type Sequence struct {
	list[Node, *Node]
}

// NewSequence creates an empty sequence backed by the given arena.
func NewSequence(a *arena.Arena[Node]) *Sequence {
	return &Sequence{newList[Node, *Node](a)}
}

// NewSequenceFromSlice creates a sequence holding the given values in order.
// It reserves all records in a single bulk arena reservation, avoiding
// per-element allocator bookkeeping; the result is indistinguishable from a
// sequence built by pushing the values one by one.
func NewSequenceFromSlice(a *arena.Arena[Node], values []common.Value) *Sequence {
	res := NewSequence(a)
	if len(values) == 0 {
		return res
	}
	first := a.NewBulk(len(values))
	for i, value := range values {
		node := a.Get(first + arena.Ref(i))
		node.value = value
		if i+1 < len(values) {
			node.next = first + arena.Ref(i+1)
		}
	}
	a.Get(res.head).next = first
	res.tail = first + arena.Ref(len(values)-1)
	res.count = uint32(len(values))
	return res
}

// newSequenceFromSlicePerElement is the simple per-element loading strategy.
// It produces a chain bit-identical to the bulk reservation path and serves
// as its correctness reference.
func newSequenceFromSlicePerElement(a *arena.Arena[Node], values []common.Value) *Sequence {
	res := NewSequence(a)
	for _, value := range values {
		res.Push(value)
	}
	return res
}

// Push appends a value at the end of the sequence. O(1).
func (s *Sequence) Push(value common.Value) {
	s.append().value = value
}

// Pop removes the last value and returns it. The value's record is unlinked
// but its arena storage is not reclaimed. O(n). Returns
// common.ErrEmptyContainer if the sequence is empty.
func (s *Sequence) Pop() (common.Value, error) {
	if s.count == 0 {
		return common.Value{}, fmt.Errorf("%w: cannot pop from an empty sequence", common.ErrEmptyContainer)
	}
	value := s.arena.Get(s.tail).value
	s.truncateTail()
	return value, nil
}

// Get returns the value at the given zero-based position. O(n). Returns
// common.ErrIndexOutOfBounds if the position is at or beyond the size.
func (s *Sequence) Get(index int) (common.Value, error) {
	node, err := s.at(index)
	if err != nil {
		return common.Value{}, err
	}
	return node.value, nil
}

// Set overwrites the value at the given zero-based position. O(n). Returns
// common.ErrIndexOutOfBounds if the position is at or beyond the size.
func (s *Sequence) Set(index int, value common.Value) error {
	node, err := s.at(index)
	if err != nil {
		return err
	}
	node.value = value
	return nil
}

func (s *Sequence) at(index int) (*Node, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: index %d, size %d", common.ErrIndexOutOfBounds, index, s.count)
	}
	return s.nodeAt(uint32(index))
}

// Size returns the number of values in the sequence. O(1).
func (s *Sequence) Size() int {
	return s.size()
}

// ToSlice materializes the values in push order into an independent slice,
// not a live view. O(n).
func (s *Sequence) ToSlice() []common.Value {
	res := make([]common.Value, 0, s.count)
	s.forEach(func(node *Node) {
		res = append(res, node.value)
	})
	return res
}

// GetStateHash computes a Keccak-256 hash of the sequence contents in chain
// order. Sequences with equal sizes and values hash equally, regardless of
// how they were loaded.
func (s *Sequence) GetStateHash() common.Hash {
	hasher := common.NewKeccakHasher()
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], s.count)
	hasher.Write(size[:])
	s.forEach(func(node *Node) {
		hasher.Write(node.value[:])
	})
	return hasher.Sum()
}

// GetMemoryFootprint provides the size of the sequence in memory in bytes,
// including its backing arena.
func (s *Sequence) GetMemoryFootprint() *common.MemoryFootprint {
	return s.getMemoryFootprint()
}
