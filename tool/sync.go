// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/scratch/arena"
	"github.com/0xsoniclabs/scratch/common"
	"github.com/0xsoniclabs/scratch/container"
	"github.com/0xsoniclabs/scratch/store/ldb"
	"github.com/urfave/cli/v2"
)

// Fill populates a LevelDB store with a range of keys, for use as the
// external collaborator of the sync command.
var Fill = cli.Command{
	Action: fill,
	Name:   "fill",
	Usage:  "populates a LevelDB store with consecutive keys",
	Flags: []cli.Flag{
		&numKeysFlag,
		&dbDirFlag,
	},
}

// Sync imports a dict from a LevelDB store, mutates every entry, writes the
// result back, and verifies the round trip.
var Sync = cli.Command{
	Action: addCpuProfileAction(sync),
	Name:   "sync",
	Usage:  "runs an import/mutate/export round trip against a LevelDB store",
	Flags: []cli.Flag{
		&numKeysFlag,
		&dbDirFlag,
		&cpuProfileFlag,
	},
}

func fill(context *cli.Context) (err error) {
	numKeys := context.Int(numKeysFlag.Name)
	target, err := ldb.NewStore(context.String(dbDirFlag.Name))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, target.Close())
	}()

	for i := 0; i < numKeys; i++ {
		if err := target.Set(common.ToKey(uint64(i)), common.ToValue(uint64(i)+1)); err != nil {
			return err
		}
	}
	fmt.Printf("filled %d keys\n", numKeys)
	return nil
}

func sync(context *cli.Context) (err error) {
	numKeys := context.Int(numKeysFlag.Name)
	source, err := ldb.NewStore(context.String(dbDirFlag.Name))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, source.Close())
	}()

	keys := make([]common.Key, numKeys)
	for i := range keys {
		keys[i] = common.ToKey(uint64(i))
	}

	dictArena := arena.New[container.DictNode]()
	dict, err := container.NewDictFromStore(dictArena, source, keys)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d of %d candidate keys\n", dict.Size(), numKeys)

	one := common.ToValue(uint64(1))
	for _, key := range keys {
		dict.Add(key, one)
	}
	if err := dict.WriteToStore(source); err != nil {
		return err
	}

	// Verify the store observes the mutation.
	for i := 0; i < dict.Size(); i++ {
		key := keys[i]
		want, err := dict.Get(key)
		if err != nil {
			return err
		}
		got, err := source.Get(key)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("store out of sync for key %x: got %x, want %x", key, got, want)
		}
	}
	fmt.Printf("synchronized %d keys\n", dict.Size())
	fmt.Printf("state hash: %x\n", dict.GetStateHash())
	return nil
}
