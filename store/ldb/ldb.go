// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/0xsoniclabs/scratch/common"
	"github.com/syndtr/goleveldb/leveldb"
)

// Store is a LevelDB-backed store.Store implementation. Keys without an
// entry in the database read as the zero value.
type Store struct {
	db              *leveldb.DB
	keySerializer   common.KeySerializer
	valueSerializer common.ValueSerializer
}

// NewStore opens a LevelDB instance in the given directory and wraps it
// into a Store.
func NewStore(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Get a value of the key (or the zero value, if not set).
func (s *Store) Get(key common.Key) (common.Value, error) {
	data, err := s.db.Get(s.keySerializer.ToBytes(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return common.Value{}, nil
		}
		return common.Value{}, err
	}
	return s.valueSerializer.FromBytes(data), nil
}

// Set a value of the key, including zero values.
func (s *Store) Set(key common.Key, value common.Value) error {
	return s.db.Put(s.keySerializer.ToBytes(key), s.valueSerializer.ToBytes(value), nil)
}

// Flush the store.
func (s *Store) Flush() error {
	return nil // leveldb writes through to its journal
}

// Close the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetMemoryFootprint provides the size of the store in memory in bytes. The
// database's own caches are not attributed to this wrapper.
func (s *Store) GetMemoryFootprint() *common.MemoryFootprint {
	return common.NewMemoryFootprint(unsafe.Sizeof(*s))
}
