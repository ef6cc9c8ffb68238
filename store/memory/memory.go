// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"fmt"
	"unsafe"

	"github.com/0xsoniclabs/scratch/common"
)

// Store is an in-memory store.Store implementation - it maps keys to values.
// Keys never written read as the zero value, which the containers interpret
// as logically absent.
type Store struct {
	data map[common.Key]common.Value
}

// NewStore constructs a new in-memory Store instance.
func NewStore() *Store {
	return &Store{
		data: make(map[common.Key]common.Value),
	}
}

// Get a value of the key (or the zero value, if not set).
func (m *Store) Get(key common.Key) (common.Value, error) {
	return m.data[key], nil
}

// Set a value of the key, including zero values.
func (m *Store) Set(key common.Key, value common.Value) error {
	m.data[key] = value
	return nil
}

// Flush the store.
func (m *Store) Flush() error {
	return nil // no-op for in-memory store
}

// Close the store.
func (m *Store) Close() error {
	return nil // no-op for in-memory store
}

// GetMemoryFootprint provides the size of the store in memory in bytes.
func (m *Store) GetMemoryFootprint() *common.MemoryFootprint {
	entrySize := unsafe.Sizeof(struct {
		key   common.Key
		value common.Value
	}{})
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*m) + uintptr(len(m.data))*entrySize)
	mf.SetNote(fmt.Sprintf("(items: %d)", len(m.data)))
	return mf
}
