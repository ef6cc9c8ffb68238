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
	"github.com/golang/snappy"
)

// Magic numbers of the snapshot formats.
const (
	sequenceSnapshotMagic uint32 = 0x5C7A7C51
	dictSnapshotMagic     uint32 = 0x5C7A7CD1
)

const scalarSize = len(common.Value{})

// Snapshot serializes the sequence contents in chain order into a
// snappy-compressed, self-describing byte blob.
func (s *Sequence) Snapshot() []byte {
	raw := make([]byte, 0, 8+s.Size()*scalarSize)
	raw = binary.BigEndian.AppendUint32(raw, sequenceSnapshotMagic)
	raw = binary.BigEndian.AppendUint32(raw, s.count)
	s.forEach(func(node *Node) {
		raw = append(raw, node.value[:]...)
	})
	return snappy.Encode(nil, raw)
}

// RestoreSequence rebuilds a sequence from a blob produced by Snapshot,
// allocating its records from the given arena. The restored sequence is
// bit-identical in contents to the snapshotted one.
func RestoreSequence(a *arena.Arena[Node], data []byte) (*Sequence, error) {
	raw, count, err := decodeSnapshot(data, sequenceSnapshotMagic, scalarSize)
	if err != nil {
		return nil, fmt.Errorf("invalid sequence snapshot: %w", err)
	}
	values := make([]common.Value, count)
	for i := range values {
		copy(values[i][:], raw[i*scalarSize:])
	}
	return NewSequenceFromSlice(a, values), nil
}

// Snapshot serializes the dict contents in chain order into a
// snappy-compressed, self-describing byte blob. Records sharing a key are
// preserved as they are chained.
func (d *Dict) Snapshot() []byte {
	raw := make([]byte, 0, 8+d.Size()*2*scalarSize)
	raw = binary.BigEndian.AppendUint32(raw, dictSnapshotMagic)
	raw = binary.BigEndian.AppendUint32(raw, d.count)
	d.forEach(func(node *DictNode) {
		raw = append(raw, node.key[:]...)
		raw = append(raw, node.value[:]...)
	})
	return snappy.Encode(nil, raw)
}

// RestoreDict rebuilds a dict from a blob produced by Snapshot, allocating
// its records from the given arena. Entries are re-inserted through the
// unchecked path, preserving the chain order of the snapshotted dict.
func RestoreDict(a *arena.Arena[DictNode], data []byte) (*Dict, error) {
	raw, count, err := decodeSnapshot(data, dictSnapshotMagic, 2*scalarSize)
	if err != nil {
		return nil, fmt.Errorf("invalid dict snapshot: %w", err)
	}
	res := NewDict(a)
	for i := 0; i < count; i++ {
		entry := raw[i*2*scalarSize:]
		var key common.Key
		var value common.Value
		copy(key[:], entry)
		copy(value[:], entry[scalarSize:])
		res.AddUnchecked(key, value)
	}
	return res, nil
}

// decodeSnapshot decompresses a snapshot blob and validates its magic
// number and entry payload length, returning the payload and entry count.
func decodeSnapshot(data []byte, magic uint32, entrySize int) ([]byte, int, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, 0, err
	}
	if len(raw) < 8 {
		return nil, 0, fmt.Errorf("truncated header, %d bytes", len(raw))
	}
	if got := binary.BigEndian.Uint32(raw); got != magic {
		return nil, 0, fmt.Errorf("unexpected magic number %x", got)
	}
	count := int(binary.BigEndian.Uint32(raw[4:]))
	if len(raw) != 8+count*entrySize {
		return nil, 0, fmt.Errorf("unexpected payload length %d for %d entries", len(raw)-8, count)
	}
	return raw[8:], count, nil
}
