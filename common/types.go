// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"bytes"
	"encoding/binary"

	"github.com/holiman/uint256"
)

// Key is a 32-byte lookup key of the associative container and the external
// key/value store.
type Key [32]byte

// Value is a fixed-width 256-bit scalar stored in the containers. The zero
// value doubles as the "logically absent" marker of the external store.
type Value [32]byte

// Hash is a 256-bit cryptographic hash of container or store contents.
type Hash [32]byte

// Compare slices lexicographically, returning -1, 0, or 1.
func (k *Key) Compare(other *Key) int {
	return bytes.Compare(k[:], other[:])
}

func (v *Value) Compare(other *Value) int {
	return bytes.Compare(v[:], other[:])
}

func (h *Hash) Compare(other *Hash) int {
	return bytes.Compare(h[:], other[:])
}

// IsZero reports whether the value is the all-zero scalar, which the
// external store convention reads as "absent".
func (v Value) IsZero() bool {
	return v == Value{}
}

// Add returns the sum of the two values using wrap-around 256-bit
// arithmetic, matching the cost model of the embedding environment.
func (v Value) Add(other Value) Value {
	var a, b uint256.Int
	a.SetBytes32(v[:])
	b.SetBytes32(other[:])
	a.Add(&a, &b)
	return Value(a.Bytes32())
}

// ToUint64 returns the low 64 bits of the value, interpreting it as a
// big-endian scalar. Higher bits are discarded.
func (v Value) ToUint64() uint64 {
	return binary.BigEndian.Uint64(v[24:])
}

// ToKey converts a numeric identifier to a big-endian Key.
func ToKey[I Identifier](id I) (key Key) {
	binary.BigEndian.PutUint64(key[24:], uint64(id))
	return key
}

// ToValue converts a numeric identifier to a big-endian Value.
func ToValue[I Identifier](id I) (value Value) {
	binary.BigEndian.PutUint64(value[24:], uint64(id))
	return value
}
