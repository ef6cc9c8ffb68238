// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gethdb

import (
	"unsafe"

	"github.com/0xsoniclabs/scratch/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
)

// Store adapts a go-ethereum key/value database to the store.Store
// interface. Keys without an entry read as the zero value.
type Store struct {
	db              ethdb.KeyValueStore
	keySerializer   common.KeySerializer
	valueSerializer common.ValueSerializer
}

// NewStore wraps the given go-ethereum database into a Store. The Store
// takes ownership of the database and closes it with the Store.
func NewStore(db ethdb.KeyValueStore) *Store {
	return &Store{db: db}
}

// NewMemoryStore creates a Store backed by go-ethereum's in-memory database.
func NewMemoryStore() *Store {
	return NewStore(memorydb.New())
}

// Get a value of the key (or the zero value, if not set).
func (s *Store) Get(key common.Key) (common.Value, error) {
	exists, err := s.db.Has(s.keySerializer.ToBytes(key))
	if err != nil || !exists {
		return common.Value{}, err
	}
	data, err := s.db.Get(s.keySerializer.ToBytes(key))
	if err != nil {
		return common.Value{}, err
	}
	return s.valueSerializer.FromBytes(data), nil
}

// Set a value of the key, including zero values.
func (s *Store) Set(key common.Key, value common.Value) error {
	return s.db.Put(s.keySerializer.ToBytes(key), s.valueSerializer.ToBytes(value))
}

// Flush the store.
func (s *Store) Flush() error {
	return nil // the wrapped database persists writes on its own
}

// Close the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetMemoryFootprint provides the size of the store in memory in bytes. The
// wrapped database's own memory is not attributed to this wrapper.
func (s *Store) GetMemoryFootprint() *common.MemoryFootprint {
	return common.NewMemoryFootprint(unsafe.Sizeof(*s))
}
