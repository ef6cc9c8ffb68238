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
	"testing"

	"github.com/0xsoniclabs/scratch/arena"
	"github.com/0xsoniclabs/scratch/common"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_SequenceRoundTrip(t *testing.T) {
	require := require.New(t)
	for _, size := range []int{0, 1, 100} {
		s := NewSequence(arena.New[Node]())
		for i := 0; i < size; i++ {
			s.Push(common.ToValue(uint64(i * 3)))
		}

		restored, err := RestoreSequence(arena.New[Node](), s.Snapshot())
		require.NoError(err, "size %d", size)
		require.Equal(s.Size(), restored.Size())
		require.Equal(s.ToSlice(), restored.ToSlice())
		require.Equal(s.GetStateHash(), restored.GetStateHash())
	}
}

func TestSnapshot_DictRoundTripPreservesChainOrderAndDuplicates(t *testing.T) {
	require := require.New(t)
	d := NewDict(arena.New[DictNode]())
	d.Set(common.ToKey(uint64(1)), common.ToValue(uint64(10)))
	d.Set(common.ToKey(uint64(2)), common.ToValue(uint64(20)))
	require.NoError(d.Clear(common.ToKey(uint64(2))))
	// a duplicate produced through the unchecked path survives the round trip
	d.AddUnchecked(common.ToKey(uint64(1)), common.ToValue(uint64(99)))

	restored, err := RestoreDict(arena.New[DictNode](), d.Snapshot())
	require.NoError(err)
	require.Equal(d.Size(), restored.Size())
	require.Equal(d.GetStateHash(), restored.GetStateHash())

	value, err := restored.Get(common.ToKey(uint64(1)))
	require.NoError(err)
	require.Equal(common.ToValue(uint64(10)), value, "scan order must match the snapshotted dict")
}

func TestSnapshot_RejectsForeignAndCorruptedBlobs(t *testing.T) {
	require := require.New(t)

	s := NewSequence(arena.New[Node]())
	s.Push(common.ToValue(uint64(1)))
	d := NewDict(arena.New[DictNode]())
	d.Set(common.ToKey(uint64(1)), common.ToValue(uint64(1)))

	// wrong container kind
	_, err := RestoreDict(arena.New[DictNode](), s.Snapshot())
	require.ErrorContains(err, "magic")
	_, err = RestoreSequence(arena.New[Node](), d.Snapshot())
	require.ErrorContains(err, "magic")

	// not a snappy stream
	_, err = RestoreSequence(arena.New[Node](), []byte("garbage"))
	require.Error(err)

	// truncated payload
	blob := d.Snapshot()
	_, err = RestoreDict(arena.New[DictNode](), blob[:len(blob)-1])
	require.Error(err)
}
