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

// DictNode is the record type of dict chains. Its fields are managed by the
// Dict; it is exported only to let callers own the backing arena.
type DictNode struct {
	next  arena.Ref
	key   common.Key
	value common.Value
}

func (n *DictNode) nextRef() arena.Ref {
	return n.next
}

func (n *DictNode) setNext(ref arena.Ref) {
	n.next = ref
}

// Dict is a key-addressed container of values backed by an arena. Lookups
// are O(n) scans over the chain; no hash layer is maintained, as scanning a
// small in-memory chain is cheaper than random accesses into the external
// store in the target cost model. A *Dict is a handle: copies of the handle
// share the same chain state.
type Dict struct {
	list[DictNode, *DictNode]
}

// NewDict creates an empty dict backed by the given arena.
func NewDict(a *arena.Arena[DictNode]) *Dict {
	return &Dict{newList[DictNode, *DictNode](a)}
}

// AddUnchecked appends a new record for the key without checking for an
// existing one. O(1). It is only safe when the key is known to be absent:
// inserting a duplicate leaves two records sharing one key, and lookups will
// deterministically act on the earliest-appended one, as scans start at the
// head of the chain.
func (d *Dict) AddUnchecked(key common.Key, value common.Value) {
	node := d.append()
	node.key = key
	node.value = value
}

// Set stores the value for the key, overwriting an existing record or
// appending a new one. O(n).
func (d *Dict) Set(key common.Key, value common.Value) {
	d.upsert(key).value = value
}

// Add adds the value to the one stored for the key, using wrap-around
// 256-bit arithmetic. An absent key is treated as holding zero. O(n).
func (d *Dict) Add(key common.Key, value common.Value) {
	node := d.upsert(key)
	node.value = node.value.Add(value)
}

// upsert returns the record of the key, appending a fresh zero-valued one if
// no record exists yet.
func (d *Dict) upsert(key common.Key) *DictNode {
	if node, exists := d.findKey(key); exists {
		return node
	}
	node := d.append()
	node.key = key
	return node
}

func (d *Dict) findKey(key common.Key) (*DictNode, bool) {
	return d.find(func(node *DictNode) bool {
		return node.key == key
	})
}

// Get returns the value stored for the key. O(n). Returns
// common.ErrKeyNotFound if no record exists for the key; an empty dict
// fails fast without scanning.
func (d *Dict) Get(key common.Key) (common.Value, error) {
	if d.count == 0 {
		return common.Value{}, fmt.Errorf("%w: dict is empty", common.ErrKeyNotFound)
	}
	node, exists := d.findKey(key)
	if !exists {
		return common.Value{}, fmt.Errorf("%w: %x", common.ErrKeyNotFound, key)
	}
	return node.value, nil
}

// Clear resets the value stored for the key to zero. The record stays in the
// chain and keeps counting towards Size; clearing is a logical zeroing, not
// a deletion. O(n). Returns common.ErrKeyNotFound if the key is absent.
func (d *Dict) Clear(key common.Key) error {
	node, exists := d.findKey(key)
	if !exists {
		return fmt.Errorf("%w: %x", common.ErrKeyNotFound, key)
	}
	node.value = common.Value{}
	return nil
}

// Size returns the number of records in the dict, including cleared ones.
// O(1).
func (d *Dict) Size() int {
	return d.size()
}

// GetStateHash computes a Keccak-256 hash of the dict contents in chain
// order. The hash is sensitive to insertion order, matching the chain's
// observable scan order.
func (d *Dict) GetStateHash() common.Hash {
	hasher := common.NewKeccakHasher()
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], d.count)
	hasher.Write(size[:])
	d.forEach(func(node *DictNode) {
		hasher.Write(node.key[:])
		hasher.Write(node.value[:])
	})
	return hasher.Sum()
}

// GetMemoryFootprint provides the size of the dict in memory in bytes,
// including its backing arena.
func (d *Dict) GetMemoryFootprint() *common.MemoryFootprint {
	return d.getMemoryFootprint()
}
