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
	"hash"

	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the Keccak-256 hash of the given data.
func Keccak256(data []byte) (res Hash) {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(res[0:0])
	return res
}

// NewKeccakHasher creates a streaming Keccak-256 hasher for callers hashing
// content incrementally, such as container state hashes.
func NewKeccakHasher() KeccakHasher {
	return KeccakHasher{hasher: sha3.NewLegacyKeccak256()}
}

// KeccakHasher accumulates written bytes into a single Keccak-256 hash.
type KeccakHasher struct {
	hasher hash.Hash
}

func (h KeccakHasher) Write(data []byte) {
	h.hasher.Write(data)
}

func (h KeccakHasher) Sum() (res Hash) {
	h.hasher.Sum(res[0:0])
	return res
}
