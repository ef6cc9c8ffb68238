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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Add_SumsSmallScalars(t *testing.T) {
	require := require.New(t)
	require.Equal(ToValue(uint64(5)), ToValue(uint64(2)).Add(ToValue(uint64(3))))
	require.Equal(ToValue(uint64(7)), ToValue(uint64(7)).Add(Value{}))
	require.Equal(uint64(12), ToValue(uint64(4)).Add(ToValue(uint64(8))).ToUint64())
}

func TestValue_Add_WrapsAround256Bits(t *testing.T) {
	require := require.New(t)
	var allOnes Value
	for i := range allOnes {
		allOnes[i] = 0xFF
	}
	// maximum value plus one wraps to zero
	require.Equal(Value{}, allOnes.Add(ToValue(uint64(1))))
	// and plus two wraps to one
	require.Equal(ToValue(uint64(1)), allOnes.Add(ToValue(uint64(2))))
}

func TestValue_IsZero(t *testing.T) {
	require := require.New(t)
	require.True(Value{}.IsZero())
	require.False(ToValue(uint64(1)).IsZero())
	require.False(Value{0: 1}.IsZero())
	require.False(Value{31: 1}.IsZero())
}

func TestToKey_EncodesBigEndian(t *testing.T) {
	require := require.New(t)
	require.Equal(Key{}, ToKey(uint64(0)))
	require.Equal(Key{31: 0x42}, ToKey(uint64(0x42)))
	require.Equal(Key{30: 0x01, 31: 0x00}, ToKey(uint32(256)))
}

func TestCompare_OrdersLexicographically(t *testing.T) {
	require := require.New(t)
	low, high := ToKey(uint64(1)), ToKey(uint64(2))
	require.Equal(-1, low.Compare(&high))
	require.Equal(1, high.Compare(&low))
	require.Equal(0, low.Compare(&low))
}

func TestKeccak256_MatchesReferenceValues(t *testing.T) {
	require := require.New(t)
	// Keccak-256 of empty input is a well-known constant.
	require.Equal(
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		fmt.Sprintf("%x", Keccak256(nil)))
	require.Equal(Keccak256([]byte("hello")), Keccak256([]byte("hello")))
	require.NotEqual(Keccak256([]byte("hello")), Keccak256([]byte("world")))
}

func TestKeccakHasher_StreamingMatchesOneShot(t *testing.T) {
	require := require.New(t)
	hasher := NewKeccakHasher()
	hasher.Write([]byte("hel"))
	hasher.Write([]byte("lo"))
	require.Equal(Keccak256([]byte("hello")), hasher.Sum())
}

func TestSerializers_RoundTrip(t *testing.T) {
	require := require.New(t)
	keySerializer := KeySerializer{}
	valueSerializer := ValueSerializer{}

	key := ToKey(uint64(0x1234))
	require.Equal(key, keySerializer.FromBytes(keySerializer.ToBytes(key)))
	require.Equal(32, keySerializer.Size())

	value := ToValue(uint64(0x5678))
	require.Equal(value, valueSerializer.FromBytes(valueSerializer.ToBytes(value)))
	require.Equal(32, valueSerializer.Size())

	out := make([]byte, 32)
	valueSerializer.CopyBytes(value, out)
	require.Equal(value[:], out)
}
