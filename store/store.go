// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package store defines the boundary contract with the external key/value
// collaborator the containers synchronize with, together with a set of
// backend implementations.
package store

import "github.com/0xsoniclabs/scratch/common"

//go:generate mockgen -source store.go -destination store_mocks.go -package store

// Store is an external key/value store accessed synchronously, one key per
// call. Entries are never deleted; a zero value reported by Get means the
// key is logically absent.
type Store interface {
	// Get returns the value stored for the key, or the zero value if the key
	// has never been written.
	Get(key common.Key) (common.Value, error)

	// Set writes the value for the key unconditionally, including zero
	// values.
	Set(key common.Key, value common.Value) error

	// Stores need to be flush and closable.
	common.FlushAndCloser

	// Also, stores provide their memory usage.
	common.MemoryFootprintProvider
}
