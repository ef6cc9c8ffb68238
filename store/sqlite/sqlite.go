// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"unsafe"

	"github.com/0xsoniclabs/scratch/common"
	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed store.Store implementation keeping key/value
// pairs in a single table. Keys without a row read as the zero value.
type Store struct {
	db              *sql.DB
	get             *sql.Stmt
	set             *sql.Stmt
	keySerializer   common.KeySerializer
	valueSerializer common.ValueSerializer
}

// NewStore opens (or creates) a SQLite database at the given path and wraps
// it into a Store.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite at %s: %w", path, err)
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS kv (key BLOB PRIMARY KEY, value BLOB NOT NULL)"); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create kv table: %w", err), db.Close())
	}
	get, err := db.Prepare("SELECT value FROM kv WHERE key = ?")
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	set, err := db.Prepare("INSERT INTO kv(key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return nil, errors.Join(err, get.Close(), db.Close())
	}
	return &Store{db: db, get: get, set: set}, nil
}

// Get a value of the key (or the zero value, if not set).
func (s *Store) Get(key common.Key) (common.Value, error) {
	var data []byte
	err := s.get.QueryRow(s.keySerializer.ToBytes(key)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.Value{}, nil
		}
		return common.Value{}, err
	}
	return s.valueSerializer.FromBytes(data), nil
}

// Set a value of the key, including zero values.
func (s *Store) Set(key common.Key, value common.Value) error {
	_, err := s.set.Exec(s.keySerializer.ToBytes(key), s.valueSerializer.ToBytes(value))
	return err
}

// Flush the store.
func (s *Store) Flush() error {
	return nil // writes are committed per statement
}

// Close the store.
func (s *Store) Close() error {
	return errors.Join(
		s.get.Close(),
		s.set.Close(),
		s.db.Close(),
	)
}

// GetMemoryFootprint provides the size of the store in memory in bytes. The
// database's own caches are not attributed to this wrapper.
func (s *Store) GetMemoryFootprint() *common.MemoryFootprint {
	return common.NewMemoryFootprint(unsafe.Sizeof(*s))
}
