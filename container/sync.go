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

	"github.com/0xsoniclabs/scratch/arena"
	"github.com/0xsoniclabs/scratch/common"
	"github.com/0xsoniclabs/scratch/store"
)

// WriteToStore writes every key currently chained in the dict into the
// store, in chain order, one key at a time. Zero values are written as well:
// a cleared key overwrites its store entry with zero. O(n) store writes.
func (d *Dict) WriteToStore(target store.Store) error {
	var err error
	d.forEach(func(node *DictNode) {
		if err != nil {
			return
		}
		if setErr := target.Set(node.key, node.value); setErr != nil {
			err = fmt.Errorf("failed to write key %x to store: %w", node.key, setErr)
		}
	})
	return err
}

// ImportFromStore reads the given candidate keys from the store and upserts
// every key holding a non-zero value into the dict. Keys holding a zero
// value are silently skipped, as the store convention reads zero as
// "logically absent"; a key explicitly stored as zero is indistinguishable
// from a key never stored (see the package documentation).
func (d *Dict) ImportFromStore(source store.Store, keys []common.Key) error {
	return d.importKeys(source, keys, d.Set)
}

// NewDictFromStore creates a dict holding the non-zero values of the given
// candidate keys. The keys must not repeat; records are inserted through the
// unchecked path without duplicate lookups. The zero-skip rule of
// ImportFromStore applies.
func NewDictFromStore(a *arena.Arena[DictNode], source store.Store, keys []common.Key) (*Dict, error) {
	res := NewDict(a)
	if err := res.importKeys(source, keys, res.AddUnchecked); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *Dict) importKeys(source store.Store, keys []common.Key, insert func(common.Key, common.Value)) error {
	for _, key := range keys {
		value, err := source.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read key %x from store: %w", key, err)
		}
		if value.IsZero() {
			continue // zero reads as absent and contributes nothing
		}
		insert(key, value)
	}
	return nil
}
