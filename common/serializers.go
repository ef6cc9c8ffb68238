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

// Serializer allows converting a type to/from a slice of bytes.
type Serializer[T any] interface {
	// ToBytes serializes the type to a new slice of bytes.
	ToBytes(T) []byte
	// CopyBytes serializes the type into the provided slice of bytes.
	CopyBytes(T, []byte)
	// FromBytes deserializes the type from the given slice of bytes.
	FromBytes([]byte) T
	// Size provides the size of the serialized form in bytes.
	Size() int
}

// KeySerializer is a Serializer of the Key type.
type KeySerializer struct{}

func (a KeySerializer) ToBytes(key Key) []byte {
	return key[:]
}
func (a KeySerializer) CopyBytes(key Key, out []byte) {
	copy(out, key[:])
}
func (a KeySerializer) FromBytes(data []byte) Key {
	var key Key
	copy(key[:], data)
	return key
}
func (a KeySerializer) Size() int {
	return len(Key{})
}

// ValueSerializer is a Serializer of the Value type.
type ValueSerializer struct{}

func (a ValueSerializer) ToBytes(value Value) []byte {
	return value[:]
}
func (a ValueSerializer) CopyBytes(value Value, out []byte) {
	copy(out, value[:])
}
func (a ValueSerializer) FromBytes(data []byte) Value {
	var value Value
	copy(value[:], data)
	return value
}
func (a ValueSerializer) Size() int {
	return len(Value{})
}
